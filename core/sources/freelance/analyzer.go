// ABOUTME: Freelance market analyzer tallying skill demand and hourly rates
// ABOUTME: Fans out to marketplace platforms and degrades per-platform

package freelance

import (
	"context"
	"strings"
	"sync"

	"trends-app-api/core/domain"
	"trends-app-api/core/extract"
	"trends-app-api/core/interfaces"
	"trends-app-api/core/normalize"
	"trends-app-api/core/ranking"
)

// Analyzer turns raw job records from several marketplaces into a
// ranked skill-demand list plus an average hourly rate.
type Analyzer struct {
	deps      interfaces.Dependencies
	platforms map[string]Platform
	order     []string
}

// NewAnalyzer creates a freelance analyzer with the default platform
// adapters registered.
func NewAnalyzer(deps interfaces.Dependencies, userAgent string) *Analyzer {
	a := &Analyzer{
		deps:      deps,
		platforms: make(map[string]Platform),
	}
	a.RegisterPlatform(NewFreelancerBoard(deps))
	a.RegisterPlatform(NewUpworkBoard(deps.Logger, userAgent))
	return a
}

// RegisterPlatform adds or replaces a marketplace adapter.
func (a *Analyzer) RegisterPlatform(p Platform) {
	if _, exists := a.platforms[p.Name()]; !exists {
		a.order = append(a.order, p.Name())
	}
	a.platforms[p.Name()] = p
}

// Platforms returns the registered platform names in registration order.
func (a *Analyzer) Platforms() []string {
	names := make([]string, len(a.order))
	copy(names, a.order)
	return names
}

// Analyze fetches jobs from the requested platforms concurrently,
// tallies skill demand and computes the average hourly rate. A platform
// that cannot be reached contributes nothing; when no platform delivers
// any job the result is not_available, and when jobs exist but no rate
// could be parsed the result is partial.
func (a *Analyzer) Analyze(ctx context.Context, platforms []string, categories []string) domain.FreelanceAnalysis {
	requested := platforms
	if len(requested) == 0 {
		requested = a.Platforms()
	}

	jobsByPlatform := make([][]domain.Job, len(requested))
	var wg sync.WaitGroup
	for i, name := range requested {
		platform, ok := a.platforms[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			a.logWarn("Unknown freelance platform requested", map[string]interface{}{
				"platform": name,
			})
			continue
		}

		wg.Add(1)
		go func(i int, platform Platform) {
			defer wg.Done()

			jobs, err := platform.FetchJobs(ctx)
			if err != nil {
				a.logWarn("Freelance platform unavailable", map[string]interface{}{
					"platform": platform.Name(),
					"error":    err.Error(),
				})
				return
			}
			jobsByPlatform[i] = jobs
		}(i, platform)
	}
	wg.Wait()

	// Combine in the order platforms were requested so ranking ties
	// reproduce deterministically.
	var jobs []domain.Job
	platformsReached := 0
	for _, fetched := range jobsByPlatform {
		if len(fetched) > 0 {
			platformsReached++
		}
		jobs = append(jobs, fetched...)
	}

	jobs = filterByCategories(jobs, categories)

	counter := ranking.NewCounter()
	rateTotal := 0.0
	ratesParsed := 0
	for _, job := range jobs {
		for _, skill := range jobSkills(job) {
			counter.Add(skill, 1)
		}
		if rate, ok := jobRate(job); ok {
			rateTotal += rate
			ratesParsed++
		}
	}

	analysis := domain.FreelanceAnalysis{
		Platforms:       requested,
		TopTechnologies: ranking.Rank(counter),
		Status:          domain.StatusOK,
		Stats: map[string]float64{
			"jobs_fetched":      float64(len(jobs)),
			"platforms_reached": float64(platformsReached),
			"rates_parsed":      float64(ratesParsed),
		},
	}

	switch {
	case len(jobs) == 0:
		analysis.Status = domain.StatusNotAvailable
	case ratesParsed == 0:
		// Signal obtained but the key rate metric is missing.
		analysis.Status = domain.StatusPartial
	default:
		analysis.AverageRate = rateTotal / float64(ratesParsed)
		analysis.Stats["average_rate"] = analysis.AverageRate
	}

	return analysis
}

// jobSkills returns the canonical skills of a job, falling back to text
// extraction when the marketplace tagged none.
func jobSkills(job domain.Job) []string {
	if len(job.Skills) > 0 {
		return normalize.Names(job.Skills)
	}
	return extract.Skills(job.Title + " " + job.Description)
}

// jobRate returns the job's hourly rate, parsing the description when
// the listing carried no explicit rate.
func jobRate(job domain.Job) (float64, bool) {
	if job.HasRate {
		return job.HourlyRate, true
	}
	return extract.HourlyRate(job.Description)
}

// filterByCategories keeps jobs matching at least one category term.
// Empty categories keep everything.
func filterByCategories(jobs []domain.Job, categories []string) []domain.Job {
	if len(categories) == 0 {
		return jobs
	}

	filtered := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		haystack := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Skills, " "))
		for _, category := range categories {
			if term := strings.ToLower(strings.TrimSpace(category)); term != "" && strings.Contains(haystack, term) {
				filtered = append(filtered, job)
				break
			}
		}
	}
	return filtered
}

func (a *Analyzer) logWarn(msg string, fields map[string]interface{}) {
	if a.deps.Logger != nil {
		a.deps.Logger.Warn(msg, fields)
	}
}
