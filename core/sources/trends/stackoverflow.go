// ABOUTME: Stack Overflow source adapter over the Stack Exchange tags API
// ABOUTME: Maps popular tag counts onto the requested keywords

package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
	"trends-app-api/core/normalize"
	"trends-app-api/core/ranking"
)

const defaultTagsURL = "https://api.stackexchange.com/2.3/tags?order=desc&sort=popular&site=stackoverflow&pagesize=100"

// StackOverflow fetches popular tag counts from the Stack Exchange API
// and keeps the tags matching the requested keywords. Counts are scaled
// down so one source's tag volume doesn't drown out the others during
// aggregation; per-source weighting can rebalance further.
type StackOverflow struct {
	deps     interfaces.Dependencies
	keywords []string
	tagsURL  string
}

// tagsResponse is the subset of the Stack Exchange payload we read.
type tagsResponse struct {
	Items []struct {
		Name  string  `json:"name"`
		Count float64 `json:"count"`
	} `json:"items"`
}

// countScale divides raw tag counts (hundreds of thousands) into the
// same order of magnitude as daily mention counts.
const countScale = 10000

// NewStackOverflow creates a Stack Overflow source for one request's
// keywords.
func NewStackOverflow(deps interfaces.Dependencies, keywords []string) *StackOverflow {
	return &StackOverflow{
		deps:     deps,
		keywords: normalize.Names(keywords),
		tagsURL:  defaultTagsURL,
	}
}

// SetTagsURL overrides the API URL, for tests.
func (s *StackOverflow) SetTagsURL(url string) {
	s.tagsURL = url
}

// Name returns the source identifier.
func (s *StackOverflow) Name() string {
	return "stackoverflow"
}

// Produce fetches tag counts. Any upstream failure yields a
// not_available result, never an error.
func (s *StackOverflow) Produce(ctx context.Context) domain.SourceResult {
	counter, scanned, err := s.fetchTags(ctx)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Stack Overflow tags unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return domain.Unavailable(s.Name())
	}

	return domain.SourceResult{
		Source:          s.Name(),
		TopTechnologies: ranking.Rank(counter),
		Status:          domain.StatusOK,
		Stats: map[string]float64{
			"tags_scanned": float64(scanned),
		},
	}
}

func (s *StackOverflow) fetchTags(ctx context.Context) (*ranking.Counter, int, error) {
	if s.deps.HTTPClient == nil {
		return nil, 0, fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.tagsURL)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, 0, fmt.Errorf("tags API returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, 0, err
	}

	var tags tagsResponse
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, 0, err
	}

	counter := ranking.NewCounter()
	// Iterate keywords first so ties in the final ranking follow
	// request order, not API order.
	for _, keyword := range s.keywords {
		for _, item := range tags.Items {
			if normalize.Name(item.Name) == keyword {
				counter.Add(keyword, item.Count/countScale)
			}
		}
	}

	return counter, len(tags.Items), nil
}
