package textutil

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Slug lowercases a name and joins its words with hyphens.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// Uid is Slug with apostrophes dropped, the form hero uids and icon
// filenames use. ("Chang'e" -> "change")
func Uid(name string) string {
	return strings.ReplaceAll(Slug(name), "'", "")
}

// FileSlug is Slug with apostrophes turned into hyphens, the form the
// per-hero scrape output files are named with. ("Chang'e" -> "chang-e")
func FileSlug(name string) string {
	return strings.ReplaceAll(Slug(name), "'", "-")
}

// SnakeCase turns a free-text stat label into a lowercase snake_case key.
func SnakeCase(label string) string {
	label = strings.TrimSpace(label)
	label = strings.ToLower(label)
	return strings.ReplaceAll(label, " ", "_")
}

// NameVariants returns the spellings tried, in order, when resolving a hero
// name against a detail map. The first map hit wins. Duplicates collapse so
// a plain name like "Kagura" only yields itself.
func NameVariants(name string) []string {
	variants := []string{
		name,
		strings.ReplaceAll(name, "-", " "),
		strings.ReplaceAll(name, " ", ""),
		strings.ReplaceAll(name, "'", ""),
		strings.ReplaceAll(name, "'", "-"),
		strings.ReplaceAll(name, " ", "-"),
	}

	seen := make(map[string]bool, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Closest returns the candidate most similar to name by JaroWinkler
// similarity, for "did you mean" style warnings.
func Closest(name string, candidates []string) (string, float64) {
	var best string
	var bestScore float64
	for _, candidate := range candidates {
		score := matchr.JaroWinkler(name, candidate, false)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, bestScore
}
