package transform

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"

	"mlbb-pipeline/lib/mlbbapi"
	"mlbb-pipeline/lib/scrapers/mlbbio"
	"mlbb-pipeline/lib/textutil"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const passiveMarker = "Unique Passive - "

var categoryPrefix = map[string]string{
	"Attack":         "a",
	"Magic":          "m",
	"Defense":        "d",
	"Movement":       "mo",
	"Attack & Magic": "am",
}

var titleCaser = cases.Title(language.English)

// Items maps the flat source item records into the nested target schema.
// Removed items are dropped, the rest sort by (category, name) so id
// assignment stays deterministic across runs.
func Items(ctx context.Context, items []mlbbio.Item) mlbbapi.Document[mlbbapi.Item] {
	doc := mlbbapi.NewDocument[mlbbapi.Item]("item-schema")
	doc.Patch = "Current 2025"

	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b mlbbio.Item) int {
		if c := strings.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	counters := map[string]int{}
	for _, item := range sorted {
		if item.Removed == 1 {
			continue
		}

		prefix, ok := categoryPrefix[item.Category]
		if !ok {
			prefix = "x"
		}
		counters[prefix]++

		doc.Data = append(doc.Data, mlbbapi.Item{
			ItemName:     item.Name,
			ID:           fmt.Sprintf("%s%03d", prefix, counters[prefix]),
			Icon:         itemIcon(item),
			ItemTier:     "3",
			ItemCategory: item.Category,
			Data: []mlbbapi.ItemData{{
				Cost:          numberString(item.PriceTotal, "0"),
				Summary:       itemSummary(item.Tags),
				Modifiers:     []map[string]string{itemModifiers(item)},
				Active:        []mlbbapi.Active{{ActiveName: "null", Description: "null", Modifiers: []map[string]string{}}},
				Passive:       []mlbbapi.Passive{{PassiveName: "null", Description: "null", Modifiers: []map[string]string{}}},
				UniquePassive: itemPassives(item),
				BuildPath:     itemBuildPath(item.RecipeComponents),
			}},
		})
	}

	return doc
}

// itemModifiers keeps only stats with a positive source value, percentage
// stats carry a trailing "%". The source lexeme is preserved verbatim.
func itemModifiers(item mlbbio.Item) map[string]string {
	modifiers := map[string]string{}
	add := func(key string, value json.Number, percent bool) {
		f, err := value.Float64()
		if err != nil || f <= 0 {
			return
		}
		if percent {
			modifiers[key] = value.String() + "%"
		} else {
			modifiers[key] = value.String()
		}
	}

	add("physical_attack", item.PhysicalAttack, false)
	add("magic_power", item.MagicPower, false)
	add("hp", item.HP, false)
	add("physical_defense", item.PhysicalDefense, false)
	add("magic_defense", item.MagicDefense, false)
	add("movement_speed", item.MovementSpeed, true)
	add("attack_speed", item.AttackSpeed, true)
	add("cd_reduction", item.CooldownReduction, true)
	add("physical_lifesteal", item.Lifesteal, true)
	add("spell_vamp", item.SpellVamp, true)
	add("penetration", item.Penetration, false)

	return modifiers
}

// itemPassives splits the passive description on the "Unique Passive - "
// marker, then each segment once on its first colon. Colonless segments are
// dropped. When nothing parses a single null placeholder is emitted.
func itemPassives(item mlbbio.Item) []mlbbapi.UniquePassive {
	var passives []mlbbapi.UniquePassive
	if item.PassiveName != "" {
		for _, segment := range strings.Split(item.PassiveDescription, passiveMarker) {
			if strings.TrimSpace(segment) == "" {
				continue
			}
			name, description, found := strings.Cut(segment, ":")
			if !found {
				continue
			}
			passives = append(passives, mlbbapi.UniquePassive{
				UniquePassiveName: strings.TrimSpace(name),
				Description:       strings.TrimSpace(description),
				Modifiers:         []map[string]string{},
			})
		}
	}

	if len(passives) == 0 {
		passives = []mlbbapi.UniquePassive{{
			UniquePassiveName: "null",
			Description:       "null",
			Modifiers:         []map[string]string{},
		}}
	}
	return passives
}

func itemBuildPath(recipeComponents string) []mlbbapi.BuildComponent {
	buildPath := []mlbbapi.BuildComponent{}
	if recipeComponents == "" {
		return buildPath
	}
	for _, component := range strings.Split(recipeComponents, ",") {
		component = strings.TrimSpace(component)
		if component == "" {
			continue
		}
		buildPath = append(buildPath, mlbbapi.BuildComponent{ItemName: component})
	}
	return buildPath
}

func itemIcon(item mlbbio.Item) string {
	if item.ImagePath != "" {
		return path.Base(item.ImagePath)
	}
	return textutil.Slug(item.Name) + ".png"
}

func itemSummary(tags string) string {
	if tags == "" {
		return ""
	}
	first, _, _ := strings.Cut(tags, ",")
	return titleCaser.String(first)
}

func numberString(n json.Number, fallback string) string {
	if n.String() == "" {
		return fallback
	}
	return n.String()
}
