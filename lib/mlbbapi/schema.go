// Package mlbbapi holds the target MLBB-API data shapes the pipeline emits.
package mlbbapi

import "time"

const (
	Author = "p3hndrx"
	Source = "https://github.com/p3hndrx/MLBB-API"
)

// Document is the envelope every output file wraps its records in.
type Document[T any] struct {
	Title   string `json:"title"`
	Revdate string `json:"revdate"`
	Patch   string `json:"patch,omitempty"`
	Author  string `json:"author"`
	Source  string `json:"source"`
	Data    []T    `json:"data"`
}

func NewDocument[T any](title string) Document[T] {
	return Document[T]{
		Title:   title,
		Revdate: time.Now().Format("20060102"),
		Author:  Author,
		Source:  Source,
		Data:    []T{},
	}
}

type Item struct {
	ItemName     string     `json:"item_name"`
	ID           string     `json:"id"`
	Icon         string     `json:"icon"`
	ItemTier     string     `json:"item_tier"`
	ItemCategory string     `json:"item_category"`
	Data         []ItemData `json:"data"`
}

type ItemData struct {
	Cost          string              `json:"cost"`
	Summary       string              `json:"summary"`
	Modifiers     []map[string]string `json:"modifiers"`
	Active        []Active            `json:"active"`
	Passive       []Passive           `json:"passive"`
	UniquePassive []UniquePassive     `json:"unique_passive"`
	BuildPath     []BuildComponent    `json:"build_path"`
}

type Active struct {
	ActiveName  string              `json:"active_name"`
	Description string              `json:"description"`
	Modifiers   []map[string]string `json:"modifiers"`
}

type Passive struct {
	PassiveName string              `json:"passive_name"`
	Description string              `json:"description"`
	Modifiers   []map[string]string `json:"modifiers"`
}

type UniquePassive struct {
	UniquePassiveName string              `json:"unique_passive_name"`
	Description       string              `json:"description"`
	Modifiers         []map[string]string `json:"modifiers"`
}

type BuildComponent struct {
	ItemName string `json:"item_name"`
}

type Hero struct {
	HeroName    string   `json:"hero_name"`
	Mlid        string   `json:"mlid"`
	Uid         string   `json:"uid"`
	ID          string   `json:"id"`
	HeroIcon    string   `json:"hero_icon"`
	Discordmoji string   `json:"discordmoji"`
	Portrait    string   `json:"portrait"`
	ReleaseYear string   `json:"release_year"`
	Laning      []string `json:"laning"`
	Class       string   `json:"class"`
	Skills      []Skill  `json:"skills"`
	// filled in by enrichment, absent until then
	Speciality []string      `json:"speciality,omitempty"`
	Counters   []RelatedHero `json:"counters,omitempty"`
	Synergies  []RelatedHero `json:"synergies,omitempty"`
}

type Skill struct {
	SkillName   string `json:"skill_name"`
	SkillIcon   string `json:"skill_icon"`
	Type        string `json:"type"`
	Cooldown    string `json:"cooldown"`
	Manacost    string `json:"manacost"`
	Description string `json:"description"`
}

// RelatedHero is the projected counter/synergy reference. Pointer fields
// pass absent source values through as null rather than zeroing them.
type RelatedHero struct {
	Heroid   *int64  `json:"heroid"`
	Heroname *string `json:"heroname"`
}

type Emblem struct {
	EmblemName string              `json:"emblem_name"`
	Icon       string              `json:"icon"`
	EmblemRole string              `json:"emblem_role"`
	ID         string              `json:"id"`
	Modifiers  []map[string]string `json:"modifiers"`
	Data       []EmblemTiers       `json:"data"`
}

type EmblemTiers struct {
	Tier1 []Talent `json:"tier1"`
	Tier2 []Talent `json:"tier2"`
	Tier3 []Talent `json:"tier3"`
}

type Talent struct {
	Name           string              `json:"name"`
	Icon           string              `json:"icon"`
	Modifiers      []map[string]string `json:"modifiers"`
	PassiveAbility string              `json:"passive_ability"`
}
