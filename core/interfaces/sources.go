// ABOUTME: Source interface for external trend signal producers
// ABOUTME: Defines the contract every source adapter must honor

package interfaces

import (
	"context"

	"trends-app-api/core/domain"
)

// Source is a producer of ranked technology mentions from one external
// origin (a subreddit listing, a job board, a tag API).
//
// Produce never returns an error: an adapter that cannot reach its
// upstream reports status "not_available" with an empty ranked list so
// aggregation degrades gracefully. Technology names in the result are
// trimmed and lower-cased, mentions are non-negative.
type Source interface {
	// Name returns the source identifier used in results and weighting.
	Name() string

	// Produce fetches and ranks the source's current signal.
	Produce(ctx context.Context) domain.SourceResult
}
