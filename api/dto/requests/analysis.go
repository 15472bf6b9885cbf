// ABOUTME: Request DTOs for analysis-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// RedditAnalysisRequest represents the request body for subreddit analysis
type RedditAnalysisRequest struct {
	// Subreddits is the list of subreddits to analyze
	Subreddits []string `json:"subreddits" minItems:"1" maxItems:"25" doc:"Subreddits to analyze (without the r/ prefix)"`

	// LookbackDays is how far back to scan posts
	LookbackDays int `json:"lookback_days,omitempty" minimum:"1" maximum:"90" default:"7" doc:"How many days of posts to scan"`

	// Keywords is the list of technology keywords to track
	Keywords []string `json:"keywords" minItems:"1" maxItems:"100" doc:"Technology keywords to track"`
}

// ApplyDefaults sets default values for optional fields
func (r *RedditAnalysisRequest) ApplyDefaults() {
	if r.LookbackDays == 0 {
		r.LookbackDays = 7
	}
}

// FreelanceAnalysisRequest represents the request body for freelance market analysis
type FreelanceAnalysisRequest struct {
	// Platforms is the list of freelance platforms to analyze
	Platforms []string `json:"platforms" minItems:"1" maxItems:"10" doc:"Freelance platforms to analyze"`

	// Categories optionally narrows the job categories scanned
	Categories []string `json:"categories,omitempty" maxItems:"25" doc:"Optional job categories to narrow the scan"`
}

// TrendsSearchRequest represents the request body for multi-source trend search
type TrendsSearchRequest struct {
	// Keywords is the list of technology keywords to search for
	Keywords []string `json:"keywords" minItems:"1" maxItems:"100" doc:"Technology keywords to search for"`

	// Timeframe is the search window understood by trend sources
	Timeframe string `json:"timeframe,omitempty" default:"now 7-d" doc:"Trend window (e.g. 'now 7-d')"`

	// Region is the two-letter region code for regional trends
	Region string `json:"region,omitempty" default:"US" doc:"Two-letter region code"`
}

// ApplyDefaults sets default values for optional fields
func (r *TrendsSearchRequest) ApplyDefaults() {
	if r.Timeframe == "" {
		r.Timeframe = "now 7-d"
	}
	if r.Region == "" {
		r.Region = "US"
	}
}

// TechnologyScorePayload is one ranked entry of a caller-supplied
// aggregation.
type TechnologyScorePayload struct {
	Technology string  `json:"technology" doc:"Canonical technology name"`
	Mentions   float64 `json:"mentions" minimum:"0" doc:"Weighted mention count"`
}

// SourceResultPayload is one per-source breakdown of a caller-supplied
// aggregation.
type SourceResultPayload struct {
	Source          string                   `json:"source" doc:"Source adapter name"`
	TopTechnologies []TechnologyScorePayload `json:"top_technologies,omitempty" doc:"Ranked mentions from this source"`
	Status          string                   `json:"status,omitempty" doc:"Source status (ok, partial, not_available, not_implemented)"`
	Stats           map[string]float64       `json:"stats,omitempty" doc:"Per-source counters"`
}

// TrendsAnalysisPayload is a pre-computed aggregation supplied inline,
// rendered as-is instead of running a fresh trend search.
type TrendsAnalysisPayload struct {
	Date            string                   `json:"date,omitempty" doc:"Analysis date (YYYY-MM-DD)"`
	Keywords        []string                 `json:"keywords,omitempty" doc:"Keywords the aggregation covers"`
	Timeframe       string                   `json:"timeframe,omitempty" doc:"Trend window the aggregation covers"`
	Region          string                   `json:"region,omitempty" doc:"Region the aggregation covers"`
	TopTechnologies []TechnologyScorePayload `json:"top_technologies" minItems:"1" doc:"Ranked technology mentions"`
	Sources         []SourceResultPayload    `json:"sources,omitempty" doc:"Per-source breakdown"`
	Stats           map[string]float64       `json:"stats,omitempty" doc:"Aggregation counters"`
}

// ReportRequest represents the request body for report generation
type ReportRequest struct {
	// Keywords drives the trend search the report is rendered from.
	// Ignored when Data carries an inline aggregation.
	Keywords []string `json:"keywords,omitempty" maxItems:"100" doc:"Technology keywords the report covers"`

	// Data renders a caller-supplied aggregation directly
	Data *TrendsAnalysisPayload `json:"data,omitempty" doc:"Pre-computed aggregation to render, bypassing the trend search"`

	// Timeframe is the search window understood by trend sources
	Timeframe string `json:"timeframe,omitempty" default:"now 7-d" doc:"Trend window (e.g. 'now 7-d')"`

	// Region is the two-letter region code for regional trends
	Region string `json:"region,omitempty" default:"US" doc:"Two-letter region code"`

	// Format selects the report output format
	Format string `json:"format,omitempty" enum:"html,pdf,excel" default:"html" doc:"Report output format"`

	// IncludeCharts toggles the bar chart section in HTML reports
	IncludeCharts *bool `json:"include_charts,omitempty" default:"true" doc:"Render the bar chart section"`
}

// ApplyDefaults sets default values for optional fields
func (r *ReportRequest) ApplyDefaults() {
	if r.Timeframe == "" {
		r.Timeframe = "now 7-d"
	}
	if r.Region == "" {
		r.Region = "US"
	}
	if r.Format == "" {
		r.Format = "html"
	}
	if r.IncludeCharts == nil {
		enabled := true
		r.IncludeCharts = &enabled
	}
}
