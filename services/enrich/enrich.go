// Package enrich layers per-hero detail (skills, speciality, counters,
// synergies) onto an already transformed hero collection.
package enrich

import (
	"context"
	"log/slog"
	"slices"
	"sort"

	"mlbb-pipeline/lib/mlbbapi"
	"mlbb-pipeline/lib/scrapers/mlbbio"
	"mlbb-pipeline/lib/textutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/enrich")

// Summary reports how a merge pass went. Heroes without a resolvable detail
// record are a warning, not an error.
type Summary struct {
	Enriched int
	Skipped  int
	Missing  []string
}

// Heroes merges detail records into the given collection and returns the
// updated copy. The input slice is left untouched. Re-running with the same
// detail map replaces rather than appends, so the operation is idempotent.
func Heroes(ctx context.Context, heroes []mlbbapi.Hero, details DetailMap) ([]mlbbapi.Hero, Summary) {
	ctx, span := tracer.Start(ctx, "Heroes")
	defer span.End()

	detailKeys := make([]string, 0, len(details))
	for key := range details {
		detailKeys = append(detailKeys, key)
	}
	sort.Strings(detailKeys)

	out := slices.Clone(heroes)
	var summary Summary

	for i := range out {
		hero := &out[i]
		if hero.HeroName == "None" {
			continue
		}

		detail := resolve(hero.HeroName, details)
		if detail == nil {
			closest, _ := textutil.Closest(hero.HeroName, detailKeys)
			slog.WarnContext(ctx, "no detail data for hero",
				"hero", hero.HeroName,
				"closest_key", closest,
			)
			summary.Skipped++
			summary.Missing = append(summary.Missing, hero.HeroName)
			continue
		}

		if len(detail.Skills) > 0 {
			skills := make([]mlbbapi.Skill, len(detail.Skills))
			for j, skill := range detail.Skills {
				skills[j] = transformSkill(skill)
			}
			hero.Skills = skills
		}
		if len(detail.Speciality) > 0 {
			hero.Speciality = detail.Speciality
		}
		if len(detail.Counters) > 0 {
			hero.Counters = projectRelated(detail.Counters)
		}
		if len(detail.Synergies) > 0 {
			hero.Synergies = projectRelated(detail.Synergies)
		}
		summary.Enriched++
	}

	return out, summary
}

// resolve tries the hero's name variants in order and takes the first hit.
func resolve(heroName string, details DetailMap) *mlbbio.HeroDetail {
	for _, variant := range textutil.NameVariants(heroName) {
		if detail, ok := details[variant]; ok {
			return detail
		}
	}
	return nil
}

// projectRelated drops a counter/synergy down to its id and name. Absent
// source fields pass through as null.
func projectRelated(related []mlbbio.RelatedHero) []mlbbapi.RelatedHero {
	out := make([]mlbbapi.RelatedHero, len(related))
	for i, r := range related {
		out[i] = mlbbapi.RelatedHero{
			Heroid:   r.ID,
			Heroname: r.HeroName,
		}
	}
	return out
}
