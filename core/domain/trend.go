// ABOUTME: Trend history models for time series over technology mentions
// ABOUTME: Used by growth rate, anomaly detection and historical comparison

package domain

// TrendPoint is one observation of a technology's score on a date.
type TrendPoint struct {
	// Date is the UTC calendar date of the observation (YYYY-MM-DD).
	Date string `json:"date"`

	// Value is the observed mention score.
	Value float64 `json:"value"`
}

// TechnologyHistory is the stored history of one technology.
type TechnologyHistory struct {
	Technology string       `json:"technology"`
	History    []TrendPoint `json:"history"`

	// Note carries a human-readable remark when no data exists.
	Note string `json:"note,omitempty"`
}

// HistoryComparison is the outcome of comparing a technology against
// its own recent history.
type HistoryComparison struct {
	Technology string       `json:"technology"`
	DaysBack   int          `json:"days_back"`
	Series     []TrendPoint `json:"series"`

	// GrowthRate is (last-first)/|first|, zero when undefined.
	GrowthRate float64 `json:"growth_rate"`

	// Anomalies lists indices of series points beyond the z-score
	// threshold.
	Anomalies []int `json:"anomalies"`

	Status SourceStatus `json:"status"`
}
