package enrich

import (
	"encoding/json"
	"strings"
	"testing"

	"mlbb-pipeline/lib/scrapers/mlbbio"

	"github.com/stretchr/testify/require"
)

func numberPtr(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func TestTransformSkill(t *testing.T) {
	testCases := []struct {
		name     string
		skill    mlbbio.Skill
		kind     string
		cooldown string
		manacost string
	}{
		{
			name: "ultimate with scaling",
			skill: mlbbio.Skill{
				SkillKey: "ultimate",
				Scaling: &mlbbio.SkillScaling{
					Cooldown: numberPtr("45"),
					ManaCost: []json.Number{"80", "90", "100"},
				},
			},
			kind:     "active",
			cooldown: "45",
			manacost: "80 / 90 / 100",
		},
		{
			name:     "passive without scaling",
			skill:    mlbbio.Skill{SkillKey: "passive"},
			kind:     "passive",
			cooldown: "null",
			manacost: "null",
		},
		{
			name:     "unknown key defaults to active",
			skill:    mlbbio.Skill{SkillKey: "skill_3"},
			kind:     "active",
			cooldown: "null",
			manacost: "null",
		},
		{
			name:     "absent key counts as passive",
			skill:    mlbbio.Skill{SkillName: "Lifeline"},
			kind:     "passive",
			cooldown: "null",
			manacost: "null",
		},
		{
			name: "scaling with only cooldown",
			skill: mlbbio.Skill{
				SkillKey: "skill_1",
				Scaling:  &mlbbio.SkillScaling{Cooldown: numberPtr("9.5")},
			},
			kind:     "active",
			cooldown: "9.5",
			manacost: "null",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			out := transformSkill(test.skill)
			require.Equal(t, test.kind, out.Type)
			require.Equal(t, test.cooldown, out.Cooldown)
			require.Equal(t, test.manacost, out.Manacost)
		})
	}
}

func TestTransformSkillTruncatesDescription(t *testing.T) {
	skill := mlbbio.Skill{
		SkillKey:         "skill_1",
		SkillName:        "Rasa Sayang",
		SkillDescription: strings.Repeat("x", 700),
	}

	out := transformSkill(skill)
	require.Len(t, out.Description, 500)
}

func TestTransformSkillCopiesFields(t *testing.T) {
	out := transformSkill(mlbbio.Skill{
		SkillKey:       "passive",
		SkillName:      "Deity Penalization",
		SkillImagePath: "/skills/deity.png",
	})

	require.Equal(t, "Deity Penalization", out.SkillName)
	require.Equal(t, "/skills/deity.png", out.SkillIcon)
}
