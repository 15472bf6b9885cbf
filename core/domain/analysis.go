// ABOUTME: Analysis result models returned by the orchestration service
// ABOUTME: Day-scoped payloads that are the unit of caching for every tool

package domain

// RedditAnalysis is the result of analyzing subreddits for technology
// mentions and sentiment.
type RedditAnalysis struct {
	Date            string                    `json:"date"`
	Subreddits      []string                  `json:"subreddits"`
	LookbackDays    int                       `json:"lookback_days"`
	TopTechnologies []TechnologyScore         `json:"top_technologies"`
	Sentiment       map[string]SentimentScore `json:"sentiment"`
	Status          SourceStatus              `json:"status"`
	Stats           map[string]float64        `json:"stats"`
}

// FreelanceAnalysis is the result of analyzing freelance marketplaces
// for skill demand and rates.
type FreelanceAnalysis struct {
	Date            string             `json:"date"`
	Platforms       []string           `json:"platforms"`
	TopTechnologies []TechnologyScore  `json:"top_technologies"`
	AverageRate     float64            `json:"average_rate"`
	Status          SourceStatus       `json:"status"`
	Stats           map[string]float64 `json:"stats"`
}

// TrendsAnalysis is the weighted multi-source aggregation over search
// and developer-community trend signals.
type TrendsAnalysis struct {
	Date            string             `json:"date"`
	Keywords        []string           `json:"keywords"`
	Timeframe       string             `json:"timeframe"`
	Region          string             `json:"region"`
	TopTechnologies []TechnologyScore  `json:"top_technologies"`
	Sources         []SourceResult     `json:"sources"`
	Stats           map[string]float64 `json:"stats"`
}

// ReportResult points at a rendered report file, or signals an
// unsupported format through Status.
type ReportResult struct {
	Path   string       `json:"path,omitempty"`
	Format string       `json:"format"`
	Status SourceStatus `json:"status"`
}
