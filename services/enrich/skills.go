package enrich

import (
	"strings"

	"mlbb-pipeline/lib/mlbbapi"
	"mlbb-pipeline/lib/scrapers/mlbbio"
)

// skill slots map to a fixed type, anything unrecognized counts as active
var skillTypes = map[string]string{
	"passive":  "passive",
	"skill_1":  "active",
	"skill_2":  "active",
	"ultimate": "active",
}

const maxSkillDescription = 500

func transformSkill(skill mlbbio.Skill) mlbbapi.Skill {
	// a record with no slot key at all counts as the passive slot
	key := skill.SkillKey
	if key == "" {
		key = "passive"
	}
	kind, ok := skillTypes[key]
	if !ok {
		kind = "active"
	}

	cooldown := "null"
	manacost := "null"
	if scaling := skill.Scaling; scaling != nil {
		if scaling.Cooldown != nil {
			cooldown = scaling.Cooldown.String()
		}
		if len(scaling.ManaCost) > 0 {
			levels := make([]string, len(scaling.ManaCost))
			for i, cost := range scaling.ManaCost {
				levels[i] = cost.String()
			}
			manacost = strings.Join(levels, " / ")
		}
	}

	return mlbbapi.Skill{
		SkillName:   skill.SkillName,
		SkillIcon:   skill.SkillImagePath,
		Type:        kind,
		Cooldown:    cooldown,
		Manacost:    manacost,
		Description: truncate(skill.SkillDescription, maxSkillDescription),
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
