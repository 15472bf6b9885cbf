// ABOUTME: Analysis handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for source analysis, trend search and history

package handlers

import (
	"context"
	"net/http"

	"trends-app-api/api/dto/mappers"
	"trends-app-api/api/dto/requests"
	"trends-app-api/api/dto/responses"
	"trends-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// AnalysisService interface defines the methods needed from the analysis service
type AnalysisService interface {
	AnalyzeReddit(ctx context.Context, subreddits []string, lookbackDays int, keywords []string) (*domain.RedditAnalysis, error)
	AnalyzeFreelance(ctx context.Context, platforms []string, categories []string) (*domain.FreelanceAnalysis, error)
	SearchTrends(ctx context.Context, keywords []string, timeframe, region string) (*domain.TrendsAnalysis, error)
	HistoricalComparison(ctx context.Context, technology string, daysBack int) (*domain.HistoryComparison, error)
	TechnologyHistory(ctx context.Context, technology string) domain.TechnologyHistory
	CachedTrends(ctx context.Context, date string) (*domain.TrendsAnalysis, bool)
	InvalidateCache(ctx context.Context, pattern string) (int, error)
}

// AnalysisHandler handles analysis-related HTTP requests
type AnalysisHandler struct {
	service AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// RegisterRoutes registers all analysis-related routes
func (h *AnalysisHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeReddit",
		Method:      http.MethodPost,
		Path:        "/analyze/reddit",
		Summary:     "Analyze subreddits for technology mentions",
		Description: "Scans recent posts in the given subreddits, tallies technology keyword mentions and computes per-keyword sentiment",
		Tags:        []string{"Analysis"},
	}, h.AnalyzeReddit)

	huma.Register(api, huma.Operation{
		OperationID: "analyzeFreelance",
		Method:      http.MethodPost,
		Path:        "/analyze/freelance",
		Summary:     "Analyze freelance marketplaces for skill demand",
		Description: "Scans freelance platform listings, tallies skill demand and averages parsed hourly rates",
		Tags:        []string{"Analysis"},
	}, h.AnalyzeFreelance)

	huma.Register(api, huma.Operation{
		OperationID: "searchTrends",
		Method:      http.MethodPost,
		Path:        "/trends/search",
		Summary:     "Search technology trends across sources",
		Description: "Fans out to the configured trend sources and merges their ranked lists with per-source weights",
		Tags:        []string{"Trends"},
	}, h.SearchTrends)

	huma.Register(api, huma.Operation{
		OperationID: "getTrendSnapshot",
		Method:      http.MethodGet,
		Path:        "/trends/{date}",
		Summary:     "Get the cached daily trend snapshot",
		Description: "Returns the aggregated trend snapshot stored for a UTC date, or a structured not-found payload",
		Tags:        []string{"Trends"},
	}, h.GetTrendSnapshot)

	huma.Register(api, huma.Operation{
		OperationID: "getTechnologyHistory",
		Method:      http.MethodGet,
		Path:        "/history/{technology}",
		Summary:     "Get a technology's stored trend history",
		Description: "Returns the stored observation series for a technology, with growth rate and anomaly detection over the requested window",
		Tags:        []string{"History"},
	}, h.GetTechnologyHistory)

	huma.Register(api, huma.Operation{
		OperationID: "invalidateCache",
		Method:      http.MethodDelete,
		Path:        "/cache",
		Summary:     "Invalidate cached entries by pattern",
		Description: "Removes cached entries whose keys match the glob pattern and returns how many were removed",
		Tags:        []string{"Cache"},
	}, h.InvalidateCache)
}

// AnalyzeRedditInput defines the input for the AnalyzeReddit operation
type AnalyzeRedditInput struct {
	Body requests.RedditAnalysisRequest `json:"body"`
}

// AnalyzeRedditOutput defines the output for the AnalyzeReddit operation
type AnalyzeRedditOutput struct {
	Body responses.RedditAnalysisResponse
}

// AnalyzeReddit handles the POST /analyze/reddit endpoint
func (h *AnalysisHandler) AnalyzeReddit(ctx context.Context, input *AnalyzeRedditInput) (*AnalyzeRedditOutput, error) {
	input.Body.ApplyDefaults()

	analysis, err := h.service.AnalyzeReddit(ctx, input.Body.Subreddits, input.Body.LookbackDays, input.Body.Keywords)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &AnalyzeRedditOutput{Body: *mappers.ToRedditAnalysisResponse(analysis)}, nil
}

// AnalyzeFreelanceInput defines the input for the AnalyzeFreelance operation
type AnalyzeFreelanceInput struct {
	Body requests.FreelanceAnalysisRequest `json:"body"`
}

// AnalyzeFreelanceOutput defines the output for the AnalyzeFreelance operation
type AnalyzeFreelanceOutput struct {
	Body responses.FreelanceAnalysisResponse
}

// AnalyzeFreelance handles the POST /analyze/freelance endpoint
func (h *AnalysisHandler) AnalyzeFreelance(ctx context.Context, input *AnalyzeFreelanceInput) (*AnalyzeFreelanceOutput, error) {
	analysis, err := h.service.AnalyzeFreelance(ctx, input.Body.Platforms, input.Body.Categories)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &AnalyzeFreelanceOutput{Body: *mappers.ToFreelanceAnalysisResponse(analysis)}, nil
}

// SearchTrendsInput defines the input for the SearchTrends operation
type SearchTrendsInput struct {
	Body requests.TrendsSearchRequest `json:"body"`
}

// SearchTrendsOutput defines the output for the SearchTrends operation
type SearchTrendsOutput struct {
	Body responses.TrendsAnalysisResponse
}

// SearchTrends handles the POST /trends/search endpoint
func (h *AnalysisHandler) SearchTrends(ctx context.Context, input *SearchTrendsInput) (*SearchTrendsOutput, error) {
	input.Body.ApplyDefaults()

	analysis, err := h.service.SearchTrends(ctx, input.Body.Keywords, input.Body.Timeframe, input.Body.Region)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchTrendsOutput{Body: *mappers.ToTrendsAnalysisResponse(analysis)}, nil
}

// GetTrendSnapshotInput defines the input for the GetTrendSnapshot operation
type GetTrendSnapshotInput struct {
	Date string `path:"date" doc:"UTC calendar date (YYYY-MM-DD)"`
}

// GetTrendSnapshotOutput defines the output for the GetTrendSnapshot operation
type GetTrendSnapshotOutput struct {
	Body responses.TrendSnapshotResponse
}

// GetTrendSnapshot handles the GET /trends/{date} endpoint. A missing
// snapshot is a structured payload rather than a 404 so callers can
// distinguish "no data for that day" from a wrong URL.
func (h *AnalysisHandler) GetTrendSnapshot(ctx context.Context, input *GetTrendSnapshotInput) (*GetTrendSnapshotOutput, error) {
	snapshot, found := h.service.CachedTrends(ctx, input.Date)
	if !found {
		return &GetTrendSnapshotOutput{
			Body: responses.TrendSnapshotResponse{
				Error: "not_found",
				Key:   "trends:" + input.Date,
			},
		}, nil
	}

	return &GetTrendSnapshotOutput{
		Body: responses.TrendSnapshotResponse{
			Snapshot: mappers.ToTrendsAnalysisResponse(snapshot),
		},
	}, nil
}

// GetTechnologyHistoryInput defines the input for the GetTechnologyHistory operation
type GetTechnologyHistoryInput struct {
	Technology string `path:"technology" doc:"Technology name (aliases are folded to the canonical name)"`
	DaysBack   int    `query:"days_back" minimum:"1" maximum:"365" doc:"Window size in days (default 30)"`
}

// GetTechnologyHistoryOutput defines the output for the GetTechnologyHistory operation
type GetTechnologyHistoryOutput struct {
	Body responses.HistoryComparisonResponse
}

// GetTechnologyHistory handles the GET /history/{technology} endpoint
func (h *AnalysisHandler) GetTechnologyHistory(ctx context.Context, input *GetTechnologyHistoryInput) (*GetTechnologyHistoryOutput, error) {
	comparison, err := h.service.HistoricalComparison(ctx, input.Technology, input.DaysBack)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetTechnologyHistoryOutput{Body: *mappers.ToHistoryComparisonResponse(comparison)}, nil
}

// InvalidateCacheInput defines the input for the InvalidateCache operation
type InvalidateCacheInput struct {
	Pattern string `query:"pattern" required:"true" doc:"Glob pattern matched against cache keys (e.g. reddit:*)"`
}

// InvalidateCacheOutput defines the output for the InvalidateCache operation
type InvalidateCacheOutput struct {
	Body responses.CacheInvalidationResponse
}

// InvalidateCache handles the DELETE /cache endpoint
func (h *AnalysisHandler) InvalidateCache(ctx context.Context, input *InvalidateCacheInput) (*InvalidateCacheOutput, error) {
	removed, err := h.service.InvalidateCache(ctx, input.Pattern)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &InvalidateCacheOutput{
		Body: responses.CacheInvalidationResponse{
			Pattern: input.Pattern,
			Removed: removed,
		},
	}, nil
}
