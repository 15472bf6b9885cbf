// ABOUTME: Source result models communicating degraded operation without errors
// ABOUTME: Status values signal ok/partial/not_available/not_implemented to callers

package domain

// SourceStatus communicates how completely a source delivered its signal.
type SourceStatus string

const (
	// StatusOK means the source delivered a full signal.
	StatusOK SourceStatus = "ok"

	// StatusPartial means some signal was obtained but a key metric
	// (e.g. an average rate) could not be computed.
	StatusPartial SourceStatus = "partial"

	// StatusNotAvailable means the source could not be reached at all.
	StatusNotAvailable SourceStatus = "not_available"

	// StatusNotImplemented means the source or feature is not built yet.
	StatusNotImplemented SourceStatus = "not_implemented"
)

// SourceResult is the output of one source adapter.
type SourceResult struct {
	// Source identifies the adapter (e.g. "reddit", "stackoverflow").
	Source string `json:"source"`

	// TopTechnologies is the ranked mention list, descending by mentions.
	TopTechnologies []TechnologyScore `json:"top_technologies"`

	// Status communicates degraded operation instead of an error.
	Status SourceStatus `json:"status"`

	// Stats holds arbitrary counters about the run (posts analyzed,
	// jobs fetched, average rate and similar).
	Stats map[string]float64 `json:"stats,omitempty"`
}

// Unavailable builds the empty result an adapter returns when its
// upstream cannot be reached. A missing source contributes zero to
// aggregation rather than aborting it.
func Unavailable(source string) SourceResult {
	return SourceResult{
		Source:          source,
		TopTechnologies: []TechnologyScore{},
		Status:          StatusNotAvailable,
	}
}

// NotImplemented builds the structured payload for a feature that is
// not built yet, signaling graceful degradation to callers.
func NotImplemented(source string) SourceResult {
	return SourceResult{
		Source:          source,
		TopTechnologies: []TechnologyScore{},
		Status:          StatusNotImplemented,
	}
}

// AggregatedResult is the merge of several ranked source lists.
type AggregatedResult struct {
	// TopTechnologies is the weighted, case-folded, re-ranked merge of
	// every source list.
	TopTechnologies []TechnologyScore `json:"top_technologies"`

	// Sources carries the per-source results that fed the merge.
	Sources []SourceResult `json:"sources,omitempty"`

	// Stats holds counters about the aggregation run.
	Stats map[string]float64 `json:"stats,omitempty"`
}
