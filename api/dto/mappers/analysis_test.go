package mappers

import (
	"testing"

	"trends-app-api/api/dto/requests"
	"trends-app-api/core/domain"
)

func TestToRedditAnalysisResponse(t *testing.T) {
	analysis := &domain.RedditAnalysis{
		Date:         "2026-08-31",
		Subreddits:   []string{"programming", "golang"},
		LookbackDays: 7,
		TopTechnologies: []domain.TechnologyScore{
			{Technology: "go", Mentions: 12},
			{Technology: "rust", Mentions: 5},
		},
		Sentiment: map[string]domain.SentimentScore{
			"go": {AvgSentiment: 0.5, Mentions: 12},
		},
		Status: domain.StatusOK,
		Stats:  map[string]float64{"posts_analyzed": 40},
	}

	response := ToRedditAnalysisResponse(analysis)

	if response.Date != "2026-08-31" {
		t.Errorf("Date = %s, want 2026-08-31", response.Date)
	}

	if len(response.TopTechnologies) != 2 {
		t.Fatalf("TopTechnologies length = %d, want 2", len(response.TopTechnologies))
	}

	if response.TopTechnologies[0].Technology != "go" {
		t.Errorf("TopTechnologies[0] = %s, want go", response.TopTechnologies[0].Technology)
	}

	if response.TopTechnologies[0].Mentions != 12 {
		t.Errorf("TopTechnologies[0].Mentions = %f, want 12", response.TopTechnologies[0].Mentions)
	}

	if response.Status != "ok" {
		t.Errorf("Status = %s, want ok", response.Status)
	}

	sentiment, exists := response.Sentiment["go"]
	if !exists {
		t.Fatal("Sentiment missing entry for go")
	}
	if sentiment.AvgSentiment != 0.5 {
		t.Errorf("AvgSentiment = %f, want 0.5", sentiment.AvgSentiment)
	}

	if response.Stats["posts_analyzed"] != 40 {
		t.Errorf("Stats[posts_analyzed] = %f, want 40", response.Stats["posts_analyzed"])
	}
}

func TestToRedditAnalysisResponse_NilInput(t *testing.T) {
	if ToRedditAnalysisResponse(nil) != nil {
		t.Error("Expected nil response for nil analysis")
	}
}

func TestToRedditAnalysisResponse_EmptyLists(t *testing.T) {
	response := ToRedditAnalysisResponse(&domain.RedditAnalysis{Date: "2026-08-31"})

	if response.TopTechnologies == nil {
		t.Error("TopTechnologies should be an empty slice, not nil")
	}

	if response.Sentiment == nil {
		t.Error("Sentiment should be an empty map, not nil")
	}
}

func TestToTrendsAnalysisResponse(t *testing.T) {
	analysis := &domain.TrendsAnalysis{
		Date:      "2026-08-31",
		Keywords:  []string{"go", "rust"},
		Timeframe: "now 7-d",
		Region:    "US",
		TopTechnologies: []domain.TechnologyScore{
			{Technology: "rust", Mentions: 7},
		},
		Sources: []domain.SourceResult{
			{
				Source:          "github_trending",
				TopTechnologies: []domain.TechnologyScore{{Technology: "rust", Mentions: 3}},
				Status:          domain.StatusOK,
			},
			{
				Source: "google_trends",
				Status: domain.StatusNotImplemented,
			},
		},
		Stats: map[string]float64{"sources_ok": 1},
	}

	response := ToTrendsAnalysisResponse(analysis)

	if len(response.Sources) != 2 {
		t.Fatalf("Sources length = %d, want 2", len(response.Sources))
	}

	if response.Sources[0].Source != "github_trending" {
		t.Errorf("Sources[0] = %s, want github_trending", response.Sources[0].Source)
	}

	if response.Sources[1].Status != "not_implemented" {
		t.Errorf("Sources[1].Status = %s, want not_implemented", response.Sources[1].Status)
	}

	if response.Sources[1].TopTechnologies == nil {
		t.Error("Sources[1].TopTechnologies should be an empty slice, not nil")
	}

	if response.TopTechnologies[0].Mentions != 7 {
		t.Errorf("TopTechnologies[0].Mentions = %f, want 7", response.TopTechnologies[0].Mentions)
	}
}

func TestToHistoryComparisonResponse(t *testing.T) {
	comparison := &domain.HistoryComparison{
		Technology: "python",
		DaysBack:   30,
		Series: []domain.TrendPoint{
			{Date: "2026-08-30", Value: 5},
			{Date: "2026-08-31", Value: 10},
		},
		GrowthRate: 1.0,
		Anomalies:  []int{1},
		Status:     domain.StatusOK,
	}

	response := ToHistoryComparisonResponse(comparison)

	if response.Technology != "python" {
		t.Errorf("Technology = %s, want python", response.Technology)
	}

	if len(response.Series) != 2 {
		t.Fatalf("Series length = %d, want 2", len(response.Series))
	}

	if response.Series[1].Value != 10 {
		t.Errorf("Series[1].Value = %f, want 10", response.Series[1].Value)
	}

	if response.GrowthRate != 1.0 {
		t.Errorf("GrowthRate = %f, want 1.0", response.GrowthRate)
	}

	if len(response.Anomalies) != 1 || response.Anomalies[0] != 1 {
		t.Errorf("Anomalies = %v, want [1]", response.Anomalies)
	}
}

func TestToHistoryComparisonResponse_EmptySeries(t *testing.T) {
	response := ToHistoryComparisonResponse(&domain.HistoryComparison{
		Technology: "cobol",
		Status:     domain.StatusNotAvailable,
	})

	if response.Series == nil {
		t.Error("Series should be an empty slice, not nil")
	}

	if response.Anomalies == nil {
		t.Error("Anomalies should be an empty slice, not nil")
	}

	if response.Status != "not_available" {
		t.Errorf("Status = %s, want not_available", response.Status)
	}
}

func TestToTechnologyHistoryResponse(t *testing.T) {
	response := ToTechnologyHistoryResponse(domain.TechnologyHistory{
		Technology: "go",
		History:    []domain.TrendPoint{{Date: "2026-08-31", Value: 3}},
	})

	if response.Technology != "go" {
		t.Errorf("Technology = %s, want go", response.Technology)
	}

	if len(response.History) != 1 {
		t.Fatalf("History length = %d, want 1", len(response.History))
	}
}

func TestToTrendsAnalysis(t *testing.T) {
	analysis := ToTrendsAnalysis(&requests.TrendsAnalysisPayload{
		Date:     "2026-08-31",
		Keywords: []string{"go", "zig"},
		TopTechnologies: []requests.TechnologyScorePayload{
			{Technology: "go", Mentions: 40},
		},
		Sources: []requests.SourceResultPayload{
			{Source: "hackernews", Status: "partial"},
		},
		Stats: map[string]float64{"sources_queried": 1},
	})

	if analysis.Date != "2026-08-31" {
		t.Errorf("Date = %s", analysis.Date)
	}
	if len(analysis.TopTechnologies) != 1 || analysis.TopTechnologies[0].Mentions != 40 {
		t.Errorf("TopTechnologies = %+v", analysis.TopTechnologies)
	}
	if len(analysis.Sources) != 1 || analysis.Sources[0].Status != domain.StatusPartial {
		t.Errorf("Sources = %+v, want hackernews partial", analysis.Sources)
	}
	if analysis.Stats["sources_queried"] != 1 {
		t.Errorf("Stats = %+v", analysis.Stats)
	}

	if ToTrendsAnalysis(nil) != nil {
		t.Error("Expected nil analysis for nil payload")
	}
}

func TestToReportResponse(t *testing.T) {
	response := ToReportResponse(&domain.ReportResult{
		Path:   "/tmp/reports/trends-report-abc.html",
		Format: "html",
		Status: domain.StatusOK,
	})

	if response.Path != "/tmp/reports/trends-report-abc.html" {
		t.Errorf("Path = %s", response.Path)
	}

	if response.Status != "ok" {
		t.Errorf("Status = %s, want ok", response.Status)
	}

	if ToReportResponse(nil) != nil {
		t.Error("Expected nil response for nil result")
	}
}
