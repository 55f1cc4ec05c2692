package mlbbio

import "encoding/json"

// Collection is the envelope the scrape dumps wrap their records in.
type Collection[T any] struct {
	Data []T `json:"data"`
}

// Item is the flat stat-per-field item record mlbb.io produces. Stats stay
// json.Number so their source lexeme ("65", "2.5") survives into the output
// strings untouched.
type Item struct {
	Name               string      `json:"name"`
	Category           string      `json:"category"`
	Removed            int         `json:"removed"`
	PhysicalAttack     json.Number `json:"physical_attack"`
	MagicPower         json.Number `json:"magic_power"`
	HP                 json.Number `json:"hp"`
	PhysicalDefense    json.Number `json:"physical_defense"`
	MagicDefense       json.Number `json:"magic_defense"`
	MovementSpeed      json.Number `json:"movement_speed"`
	AttackSpeed        json.Number `json:"attack_speed"`
	CooldownReduction  json.Number `json:"cooldown_reduction"`
	Lifesteal          json.Number `json:"lifesteal"`
	SpellVamp          json.Number `json:"spell_vamp"`
	Penetration        json.Number `json:"penetration"`
	PassiveName        string      `json:"passive_name"`
	PassiveDescription string      `json:"passive_description"`
	RecipeComponents   string      `json:"recipe_components"`
	ImagePath          string      `json:"image_path"`
	Tags               string      `json:"tags"`
	PriceTotal         json.Number `json:"price_total"`
}

type Hero struct {
	ID       int          `json:"id"`
	HeroName string       `json:"hero_name"`
	Lane     StringOrList `json:"lane"`
	Role     StringOrList `json:"role"`
	ImgSrc   string       `json:"img_src"`
}

// StringOrList accepts fields that come back as either a bare string or a
// list of strings depending on which scrape produced the file. The two
// shapes transform differently, so the distinction is kept.
type StringOrList struct {
	List   []string
	Str    string
	IsList bool
}

func (s *StringOrList) UnmarshalJSON(raw []byte) error {
	if string(raw) == "null" {
		*s = StringOrList{}
		return nil
	}
	if len(raw) > 0 && raw[0] == '[' {
		s.IsList = true
		return json.Unmarshal(raw, &s.List)
	}
	s.IsList = false
	return json.Unmarshal(raw, &s.Str)
}

type Emblem struct {
	Name string `json:"name"`
	// free-text lines of the form "HP +275.00"
	Attributes []string `json:"attributes"`
}

type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

// DetailResponse is the payload of /api/hero/detail/<name> and of each
// per-hero scrape output file.
type DetailResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *HeroDetail `json:"data"`
}

type HeroDetail struct {
	HeroName   string        `json:"hero_name"`
	Speciality []string      `json:"speciality"`
	Skills     []Skill       `json:"skills"`
	Counters   []RelatedHero `json:"counters"`
	Synergies  []RelatedHero `json:"synergies"`
}

type Skill struct {
	SkillKey         string        `json:"skill_key"`
	SkillName        string        `json:"skill_name"`
	SkillImagePath   string        `json:"skill_image_path"`
	SkillDescription string        `json:"skill_description"`
	Scaling          *SkillScaling `json:"skill_scaling"`
}

type SkillScaling struct {
	Cooldown *json.Number  `json:"cooldown"`
	ManaCost []json.Number `json:"mana_cost"`
}

type RelatedHero struct {
	ID       *int64  `json:"id"`
	HeroName *string `json:"hero_name"`
}
