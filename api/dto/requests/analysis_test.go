package requests

import (
	"testing"
)

func TestRedditAnalysisRequest_Defaults(t *testing.T) {
	req := RedditAnalysisRequest{
		Subreddits: []string{"programming"},
		Keywords:   []string{"go"},
	}

	req.ApplyDefaults()

	if req.LookbackDays != 7 {
		t.Errorf("Default LookbackDays = %d, want 7", req.LookbackDays)
	}
}

func TestRedditAnalysisRequest_DoesNotOverrideSetValues(t *testing.T) {
	req := RedditAnalysisRequest{
		Subreddits:   []string{"programming"},
		LookbackDays: 30,
		Keywords:     []string{"go"},
	}

	req.ApplyDefaults()

	if req.LookbackDays != 30 {
		t.Errorf("LookbackDays = %d, want 30 (should not override)", req.LookbackDays)
	}
}

func TestTrendsSearchRequest_Defaults(t *testing.T) {
	req := TrendsSearchRequest{
		Keywords: []string{"rust"},
	}

	req.ApplyDefaults()

	if req.Timeframe != "now 7-d" {
		t.Errorf("Default Timeframe = %q, want %q", req.Timeframe, "now 7-d")
	}

	if req.Region != "US" {
		t.Errorf("Default Region = %q, want %q", req.Region, "US")
	}
}

func TestTrendsSearchRequest_DoesNotOverrideSetValues(t *testing.T) {
	req := TrendsSearchRequest{
		Keywords:  []string{"rust"},
		Timeframe: "today 12-m",
		Region:    "DE",
	}

	req.ApplyDefaults()

	if req.Timeframe != "today 12-m" {
		t.Errorf("Timeframe = %q, want %q (should not override)", req.Timeframe, "today 12-m")
	}

	if req.Region != "DE" {
		t.Errorf("Region = %q, want %q (should not override)", req.Region, "DE")
	}
}

func TestReportRequest_Defaults(t *testing.T) {
	req := ReportRequest{
		Keywords: []string{"python"},
	}

	req.ApplyDefaults()

	if req.Format != "html" {
		t.Errorf("Default Format = %q, want %q", req.Format, "html")
	}

	if req.IncludeCharts == nil || !*req.IncludeCharts {
		t.Error("Default IncludeCharts should be true")
	}

	if req.Timeframe != "now 7-d" {
		t.Errorf("Default Timeframe = %q, want %q", req.Timeframe, "now 7-d")
	}
}

func TestReportRequest_DoesNotOverrideSetValues(t *testing.T) {
	disabled := false
	req := ReportRequest{
		Keywords:      []string{"python"},
		Format:        "pdf",
		IncludeCharts: &disabled,
	}

	req.ApplyDefaults()

	if req.Format != "pdf" {
		t.Errorf("Format = %q, want %q (should not override)", req.Format, "pdf")
	}

	if req.IncludeCharts == nil || *req.IncludeCharts {
		t.Error("IncludeCharts = true, want false (should not override)")
	}
}
