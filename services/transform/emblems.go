package transform

import (
	"context"
	"fmt"
	"strings"

	"mlbb-pipeline/lib/mlbbapi"
	"mlbb-pipeline/lib/scrapers/mlbbio"
	"mlbb-pipeline/lib/textutil"
)

const maxEmblemTalents = 3

// Emblems combines the main-emblem records with their matching ability
// talents. Ids are 1-based ordinals in input order.
func Emblems(ctx context.Context, mains []mlbbio.Emblem, abilities []mlbbio.Ability) mlbbapi.Document[mlbbapi.Emblem] {
	doc := mlbbapi.NewDocument[mlbbapi.Emblem]("emblem-meta-final")

	for idx, emblem := range mains {
		doc.Data = append(doc.Data, mlbbapi.Emblem{
			EmblemName: emblem.Name,
			Icon:       "/emblems/" + strings.ToLower(emblem.Name) + ".png",
			EmblemRole: strings.ToLower(emblem.Name),
			ID:         fmt.Sprintf("%03d", idx+1),
			Modifiers:  []map[string]string{emblemModifiers(emblem.Attributes)},
			Data: []mlbbapi.EmblemTiers{{
				// the source has no tier1/tier2 breakdown
				Tier1: []mlbbapi.Talent{},
				Tier2: []mlbbapi.Talent{},
				Tier3: matchTalents(emblem.Name, abilities),
			}},
		})
	}

	return doc
}

// emblemModifiers parses free-text lines like "Adaptive Attack +22.00" by
// splitting on the last '+'. Lines without one are skipped.
func emblemModifiers(attributes []string) map[string]string {
	modifiers := map[string]string{}
	for _, attr := range attributes {
		label, value, found := cutLast(attr, '+')
		if !found {
			continue
		}
		modifiers[textutil.SnakeCase(label)] = strings.TrimSpace(value)
	}
	return modifiers
}

// matchTalents picks the first abilities whose tags mention the emblem name,
// case-insensitively. Zero matches yield a single placeholder talent.
func matchTalents(emblemName string, abilities []mlbbio.Ability) []mlbbapi.Talent {
	lowerName := strings.ToLower(emblemName)

	var talents []mlbbapi.Talent
	for _, ability := range abilities {
		if !strings.Contains(strings.ToLower(ability.Tags), lowerName) {
			continue
		}
		talents = append(talents, mlbbapi.Talent{
			Name:           ability.Name,
			Icon:           "/talents/" + textutil.Slug(ability.Name) + ".png",
			Modifiers:      []map[string]string{},
			PassiveAbility: ability.Description,
		})
		if len(talents) == maxEmblemTalents {
			break
		}
	}

	if len(talents) == 0 {
		talents = []mlbbapi.Talent{{
			Name:           "Talent 1",
			Icon:           "/talents/placeholder.png",
			Modifiers:      []map[string]string{},
			PassiveAbility: "",
		}}
	}
	return talents
}

func cutLast(s string, sep byte) (before, after string, found bool) {
	idx := strings.LastIndexByte(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}
