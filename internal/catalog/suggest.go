package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

// suggest ranks known ids by edit distance to a missed lookup. Only ids within
// a third of the query length (at least 2 edits) are offered.
func (c *Catalog) suggest(id string) []string {
	query := strings.ToLower(strings.TrimSpace(id))
	if query == "" {
		return nil
	}
	limit := len(query) / 3
	if limit < 2 {
		limit = 2
	}

	type candidate struct {
		id   string
		dist int
	}
	var candidates []candidate
	for _, p := range c.all {
		d := levenshtein.ComputeDistance(query, strings.ToLower(p.ID))
		if d <= limit {
			candidates = append(candidates, candidate{id: p.ID, dist: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	out := make([]string, 0, maxSuggestions)
	for _, cand := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, cand.id)
	}
	return out
}
