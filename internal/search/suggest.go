package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit candidates closest to query by edit distance,
// for "você quis dizer" hints when a search finds nothing. Each candidate is
// compared word by word so a query close to a first or last name still hits.
// Candidates further than a third of the query length are dropped.
func Suggest(candidates []string, query string, limit int) []string {
	q := Normalize(query)
	if utf8.RuneCountInString(q) < MinQueryLength || limit <= 0 {
		return nil
	}
	maxDist := utf8.RuneCountInString(q)/3 + 1

	type scored struct {
		name string
		dist int
	}
	seen := make(map[string]bool, len(candidates))
	var hits []scored

	for _, c := range candidates {
		norm := Normalize(c)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true

		best := levenshtein.ComputeDistance(q, norm)
		for _, word := range strings.Fields(norm) {
			if d := levenshtein.ComputeDistance(q, word); d < best {
				best = d
			}
		}
		if best <= maxDist {
			hits = append(hits, scored{name: c, dist: best})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}
