// ABOUTME: Google Trends source stub returning a structured not_implemented result
// ABOUTME: Keeps the aggregation surface stable until a real client lands

package trends

import (
	"context"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
)

// GoogleTrends is a placeholder source. There is no public Google
// Trends API; until a client is wired in, the source reports
// not_implemented so callers see graceful degradation instead of a
// failure.
type GoogleTrends struct {
	logger interfaces.Logger
}

// NewGoogleTrends creates the stub source.
func NewGoogleTrends(logger interfaces.Logger) *GoogleTrends {
	return &GoogleTrends{logger: logger}
}

// Name returns the source identifier.
func (g *GoogleTrends) Name() string {
	return "google_trends"
}

// Produce reports not_implemented with an empty ranked list.
func (g *GoogleTrends) Produce(ctx context.Context) domain.SourceResult {
	if g.logger != nil {
		g.logger.Warn("Google Trends source not implemented yet", nil)
	}
	return domain.NotImplemented(g.Name())
}
