// ABOUTME: Ranking engine turning counters into sorted technology lists
// ABOUTME: Merges ranked lists from several sources with per-source weights

package ranking

import (
	"sort"
	"strings"

	"trends-app-api/core/domain"
)

// Rank produces a ranked list from accumulated counts: descending by
// score, equal scores preserving the counter's insertion order.
func Rank(c *Counter) []domain.TechnologyScore {
	ranked := make([]domain.TechnologyScore, 0, c.Len())
	for _, name := range c.order {
		ranked = append(ranked, domain.TechnologyScore{
			Technology: name,
			Mentions:   c.counts[name],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Mentions > ranked[j].Mentions
	})

	return ranked
}

// Aggregate merges the ranked lists of several sources into one. Every
// entry's mentions are multiplied by the source's weight (default 1.0)
// and summed per lower-cased technology name, then re-ranked. Ties
// break on discovery order across sources in the order supplied.
func Aggregate(results []domain.SourceResult, weights map[string]float64) []domain.TechnologyScore {
	totals := NewCounter()

	for _, result := range results {
		weight := 1.0
		if w, ok := weights[result.Source]; ok {
			weight = w
		}
		for _, score := range result.TopTechnologies {
			name := strings.ToLower(strings.TrimSpace(score.Technology))
			if name == "" {
				continue
			}
			totals.Add(name, score.Mentions*weight)
		}
	}

	return Rank(totals)
}
