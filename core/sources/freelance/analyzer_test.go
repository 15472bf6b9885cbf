package freelance

import (
	"context"
	"fmt"
	"testing"

	"trends-app-api/core/domain"
)

// stubPlatform is a Platform returning canned jobs or an error.
type stubPlatform struct {
	name string
	jobs []domain.Job
	err  error
}

func (s *stubPlatform) Name() string { return s.name }

func (s *stubPlatform) FetchJobs(context.Context) ([]domain.Job, error) {
	return s.jobs, s.err
}

func newTestAnalyzer(platforms ...Platform) *Analyzer {
	a := &Analyzer{platforms: make(map[string]Platform)}
	for _, p := range platforms {
		a.RegisterPlatform(p)
	}
	return a
}

func TestAnalyze_TalliesSkills(t *testing.T) {
	analyzer := newTestAnalyzer(&stubPlatform{
		name: "freelancer",
		jobs: []domain.Job{
			{Title: "API work", Skills: []string{"Python", "Django"}, HourlyRate: 40, HasRate: true},
			{Title: "Backend", Skills: []string{"python", "PostgreSQL"}, HourlyRate: 60, HasRate: true},
		},
	})

	result := analyzer.Analyze(context.Background(), []string{"freelancer"}, nil)

	if result.Status != domain.StatusOK {
		t.Errorf("Status = %q, want ok", result.Status)
	}
	if result.TopTechnologies[0].Technology != "python" || result.TopTechnologies[0].Mentions != 2 {
		t.Errorf("top = %+v, want python: 2", result.TopTechnologies[0])
	}
	if result.AverageRate != 50 {
		t.Errorf("AverageRate = %v, want 50", result.AverageRate)
	}
}

func TestAnalyze_SkillsFallBackToExtraction(t *testing.T) {
	analyzer := newTestAnalyzer(&stubPlatform{
		name: "upwork",
		jobs: []domain.Job{
			{Title: "Need a Rust engineer", Description: "Build a Kafka consumer, $55/hr"},
		},
	})

	result := analyzer.Analyze(context.Background(), []string{"upwork"}, nil)

	found := map[string]bool{}
	for _, score := range result.TopTechnologies {
		found[score.Technology] = true
	}
	if !found["rust"] || !found["kafka"] {
		t.Errorf("TopTechnologies = %v, want rust and kafka extracted from text", result.TopTechnologies)
	}
	if result.AverageRate != 55 {
		t.Errorf("AverageRate = %v, want 55 parsed from description", result.AverageRate)
	}
}

func TestAnalyze_PartialWhenNoRates(t *testing.T) {
	analyzer := newTestAnalyzer(&stubPlatform{
		name: "freelancer",
		jobs: []domain.Job{{Title: "Logo design", Skills: []string{"photoshop"}}},
	})

	result := analyzer.Analyze(context.Background(), []string{"freelancer"}, nil)

	if result.Status != domain.StatusPartial {
		t.Errorf("Status = %q, want partial when no rate was parseable", result.Status)
	}
	if result.AverageRate != 0 {
		t.Errorf("AverageRate = %v, want 0", result.AverageRate)
	}
}

func TestAnalyze_NotAvailableWhenAllPlatformsFail(t *testing.T) {
	analyzer := newTestAnalyzer(
		&stubPlatform{name: "freelancer", err: fmt.Errorf("blocked")},
		&stubPlatform{name: "upwork", err: fmt.Errorf("timeout")},
	)

	result := analyzer.Analyze(context.Background(), nil, nil)

	if result.Status != domain.StatusNotAvailable {
		t.Errorf("Status = %q, want not_available", result.Status)
	}
	if len(result.TopTechnologies) != 0 {
		t.Errorf("TopTechnologies = %v, want empty", result.TopTechnologies)
	}
}

func TestAnalyze_FailedPlatformDoesNotAbortSiblings(t *testing.T) {
	analyzer := newTestAnalyzer(
		&stubPlatform{name: "upwork", err: fmt.Errorf("403")},
		&stubPlatform{name: "freelancer", jobs: []domain.Job{
			{Title: "Go service", Skills: []string{"go"}, HourlyRate: 70, HasRate: true},
		}},
	)

	result := analyzer.Analyze(context.Background(), []string{"upwork", "freelancer"}, nil)

	if result.Status != domain.StatusOK {
		t.Errorf("Status = %q, want ok from the healthy platform", result.Status)
	}
	if result.Stats["platforms_reached"] != 1 {
		t.Errorf("platforms_reached = %v, want 1", result.Stats["platforms_reached"])
	}
}

func TestAnalyze_CategoryFilter(t *testing.T) {
	analyzer := newTestAnalyzer(&stubPlatform{
		name: "freelancer",
		jobs: []domain.Job{
			{Title: "Web scraping in Python", Skills: []string{"python"}, HourlyRate: 30, HasRate: true},
			{Title: "Video editing", Skills: []string{"premiere"}, HourlyRate: 25, HasRate: true},
		},
	})

	result := analyzer.Analyze(context.Background(), []string{"freelancer"}, []string{"scraping"})

	if result.Stats["jobs_fetched"] != 1 {
		t.Errorf("jobs_fetched = %v, want 1 after category filter", result.Stats["jobs_fetched"])
	}
	if len(result.TopTechnologies) != 1 || result.TopTechnologies[0].Technology != "python" {
		t.Errorf("TopTechnologies = %v, want only python", result.TopTechnologies)
	}
}

func TestAnalyze_SkillAliasesCollapse(t *testing.T) {
	analyzer := newTestAnalyzer(&stubPlatform{
		name: "freelancer",
		jobs: []domain.Job{
			{Title: "a", Skills: []string{"JS"}, HourlyRate: 10, HasRate: true},
			{Title: "b", Skills: []string{"javascript"}, HourlyRate: 20, HasRate: true},
		},
	})

	result := analyzer.Analyze(context.Background(), []string{"freelancer"}, nil)

	if len(result.TopTechnologies) != 1 {
		t.Fatalf("TopTechnologies = %v, want aliases collapsed", result.TopTechnologies)
	}
	if result.TopTechnologies[0].Technology != "javascript" || result.TopTechnologies[0].Mentions != 2 {
		t.Errorf("top = %+v, want javascript: 2", result.TopTechnologies[0])
	}
}
