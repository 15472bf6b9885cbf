// ABOUTME: Response DTOs for analysis-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// TechnologyScoreResponse represents one ranked technology entry
type TechnologyScoreResponse struct {
	Technology string  `json:"technology" doc:"Canonical technology name"`
	Mentions   float64 `json:"mentions" doc:"Mention score, descending across the list"`
}

// SentimentScoreResponse represents per-keyword sentiment
type SentimentScoreResponse struct {
	AvgSentiment float64 `json:"avg_sentiment" doc:"Lexicon score normalized per mention"`
	Mentions     int     `json:"mentions" doc:"Posts mentioning the keyword"`
}

// SourceResultResponse represents one source adapter's contribution
type SourceResultResponse struct {
	Source          string                    `json:"source" doc:"Source adapter name"`
	TopTechnologies []TechnologyScoreResponse `json:"top_technologies" doc:"Ranked technologies from this source"`
	Status          string                    `json:"status" doc:"ok, partial, not_available or not_implemented"`
	Stats           map[string]float64        `json:"stats,omitempty" doc:"Per-source run counters"`
}

// RedditAnalysisResponse represents the result of a subreddit analysis
type RedditAnalysisResponse struct {
	Date            string                            `json:"date" doc:"UTC calendar date of the analysis"`
	Subreddits      []string                          `json:"subreddits" doc:"Subreddits that were scanned"`
	LookbackDays    int                               `json:"lookback_days" doc:"How many days of posts were scanned"`
	TopTechnologies []TechnologyScoreResponse         `json:"top_technologies" doc:"Ranked technology mentions"`
	Sentiment       map[string]SentimentScoreResponse `json:"sentiment" doc:"Per-keyword sentiment scores"`
	Status          string                            `json:"status" doc:"ok or not_available"`
	Stats           map[string]float64                `json:"stats" doc:"Run counters"`
}

// FreelanceAnalysisResponse represents the result of a freelance market analysis
type FreelanceAnalysisResponse struct {
	Date            string                    `json:"date" doc:"UTC calendar date of the analysis"`
	Platforms       []string                  `json:"platforms" doc:"Platforms that were scanned"`
	TopTechnologies []TechnologyScoreResponse `json:"top_technologies" doc:"Ranked skill demand"`
	AverageRate     float64                   `json:"average_rate" doc:"Average parsed hourly rate, zero when none parsed"`
	Status          string                    `json:"status" doc:"ok, partial or not_available"`
	Stats           map[string]float64        `json:"stats" doc:"Run counters"`
}

// TrendsAnalysisResponse represents the weighted multi-source aggregation
type TrendsAnalysisResponse struct {
	Date            string                    `json:"date" doc:"UTC calendar date of the analysis"`
	Keywords        []string                  `json:"keywords" doc:"Keywords that were searched"`
	Timeframe       string                    `json:"timeframe" doc:"Trend window used"`
	Region          string                    `json:"region" doc:"Region code used"`
	TopTechnologies []TechnologyScoreResponse `json:"top_technologies" doc:"Weighted merge across sources"`
	Sources         []SourceResultResponse    `json:"sources" doc:"Per-source results that fed the merge"`
	Stats           map[string]float64        `json:"stats" doc:"Aggregation counters"`
}

// TrendSnapshotResponse wraps the cached daily snapshot lookup. A missing
// snapshot is a structured payload, not an HTTP error.
type TrendSnapshotResponse struct {
	Snapshot *TrendsAnalysisResponse `json:"snapshot,omitempty" doc:"The cached daily aggregation, when present"`
	Error    string                  `json:"error,omitempty" doc:"not_found when no snapshot exists for the date"`
	Key      string                  `json:"key,omitempty" doc:"The cache key that was looked up"`
}

// TrendPointResponse represents one observation in a technology's history
type TrendPointResponse struct {
	Date  string  `json:"date" doc:"UTC calendar date of the observation"`
	Value float64 `json:"value" doc:"Observed mention score"`
}

// TechnologyHistoryResponse represents the stored history of one technology
type TechnologyHistoryResponse struct {
	Technology string               `json:"technology" doc:"Canonical technology name"`
	History    []TrendPointResponse `json:"history" doc:"Chronological observations"`
	Note       string               `json:"note,omitempty" doc:"Remark when no data exists"`
}

// HistoryComparisonResponse represents growth and anomaly analysis over a window
type HistoryComparisonResponse struct {
	Technology string               `json:"technology" doc:"Canonical technology name"`
	DaysBack   int                  `json:"days_back" doc:"Window size in days"`
	Series     []TrendPointResponse `json:"series" doc:"Trailing observations inside the window"`
	GrowthRate float64              `json:"growth_rate" doc:"(last-first)/|first|, zero when undefined"`
	Anomalies  []int                `json:"anomalies" doc:"Indices of series points beyond the z-score threshold"`
	Status     string               `json:"status" doc:"ok or not_available"`
}

// ReportResponse represents the result of a report generation
type ReportResponse struct {
	Path   string `json:"path,omitempty" doc:"Filesystem path of the rendered report"`
	Format string `json:"format" doc:"Requested output format"`
	Status string `json:"status" doc:"ok or not_implemented"`
}

// CacheInvalidationResponse represents the outcome of a cache invalidation
type CacheInvalidationResponse struct {
	Pattern string `json:"pattern" doc:"Glob pattern that was applied"`
	Removed int    `json:"removed" doc:"Number of entries removed"`
}

// HealthResponse represents the liveness payload
type HealthResponse struct {
	Status  string `json:"status" doc:"Always ok when the server is up"`
	Version string `json:"version" doc:"API version"`
}

// PromptResponse represents a named analysis prompt text
type PromptResponse struct {
	Name   string `json:"name" doc:"Prompt identifier"`
	Prompt string `json:"prompt" doc:"Prompt text"`
}
