package transform

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"mlbb-pipeline/lib/mlbbapi"
	"mlbb-pipeline/lib/scrapers/mlbbio"
	"mlbb-pipeline/lib/textutil"
)

// Heroes maps the flat source hero records into the target schema skeleton.
// Skills stay empty here, enrichment fills them in afterward. The sentinel
// "None" record always sits at index 0.
func Heroes(ctx context.Context, heroes []mlbbio.Hero) mlbbapi.Document[mlbbapi.Hero] {
	doc := mlbbapi.NewDocument[mlbbapi.Hero]("hero-schema")
	doc.Data = append(doc.Data, sentinelHero())

	sorted := slices.Clone(heroes)
	slices.SortFunc(sorted, func(a, b mlbbio.Hero) int {
		return cmp.Compare(a.ID, b.ID)
	})

	for _, hero := range sorted {
		uid := textutil.Uid(hero.HeroName)
		doc.Data = append(doc.Data, mlbbapi.Hero{
			HeroName:    hero.HeroName,
			Mlid:        strconv.Itoa(hero.ID),
			Uid:         uid,
			ID:          fmt.Sprintf("h%03d", hero.ID),
			HeroIcon:    uid + ".png",
			Discordmoji: "",
			Portrait:    hero.ImgSrc,
			ReleaseYear: "",
			Laning:      heroLaning(hero.Lane),
			Class:       heroClass(hero.Role),
			Skills:      []mlbbapi.Skill{},
		})
	}

	return doc
}

// sentinelHero is the "no hero selected" record. It is never enriched.
func sentinelHero() mlbbapi.Hero {
	return mlbbapi.Hero{
		HeroName:    "None",
		Mlid:        "",
		Uid:         "null",
		ID:          "",
		HeroIcon:    "null.png",
		Discordmoji: "<:null:852659015532150825>",
		Portrait:    "",
		ReleaseYear: "",
		Laning:      []string{""},
		Class:       "",
		Skills:      []mlbbapi.Skill{},
	}
}

// A lane list passes through untouched, a bare string is lowercased and
// wrapped, anything else becomes a single empty element.
func heroLaning(lane mlbbio.StringOrList) []string {
	if lane.IsList {
		return lane.List
	}
	if lane.Str != "" {
		return []string{strings.ToLower(lane.Str)}
	}
	return []string{""}
}

func heroClass(role mlbbio.StringOrList) string {
	if role.IsList {
		return strings.Join(role.List, ", ")
	}
	return role.Str
}
