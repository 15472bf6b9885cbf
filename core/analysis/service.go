// ABOUTME: Analysis service orchestrating sources, ranking and the cache store
// ABOUTME: Every operation is day-scoped and routes through fetch-or-compute

package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"trends-app-api/core/cache"
	"trends-app-api/core/domain"
	"trends-app-api/core/errors"
	"trends-app-api/core/interfaces"
	"trends-app-api/core/normalize"
	"trends-app-api/core/ranking"
	"trends-app-api/core/sources/freelance"
	"trends-app-api/core/sources/reddit"
	"trends-app-api/core/sources/trends"
)

// SourceFactory builds the trend sources for one request's keywords.
type SourceFactory func(keywords []string) []interfaces.Source

// Config tunes the analysis service.
type Config struct {
	// TTL is how long analysis results stay cached.
	TTL time.Duration

	// Weights maps source names to aggregation weights (default 1.0).
	Weights map[string]float64

	// TopN truncates ranked result lists; 0 keeps every entry.
	TopN int

	// DataDir holds history_{technology}.json fallback files.
	DataDir string

	// UserAgent identifies outbound scrapers.
	UserAgent string
}

// Service implements the analysis operations behind the API handlers.
type Service struct {
	deps      interfaces.Dependencies
	store     *cache.Store
	reddit    *reddit.Analyzer
	freelance *freelance.Analyzer
	sources   SourceFactory
	weights   map[string]float64
	topN      int
	ttl       time.Duration
	dataDir   string
}

// NewService creates the analysis service with default source adapters.
func NewService(deps interfaces.Dependencies, store *cache.Store, cfg Config) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}

	s := &Service{
		deps:      deps,
		store:     store,
		reddit:    reddit.NewAnalyzer(deps),
		freelance: freelance.NewAnalyzer(deps, cfg.UserAgent),
		weights:   cfg.Weights,
		topN:      cfg.TopN,
		ttl:       cfg.TTL,
		dataDir:   cfg.DataDir,
	}
	s.sources = func(keywords []string) []interfaces.Source {
		return []interfaces.Source{
			trends.NewGitHubTrending(deps, keywords),
			trends.NewStackOverflow(deps, keywords),
			trends.NewGoogleTrends(deps.Logger),
		}
	}
	return s
}

// SetSourceFactory overrides trend source construction, for tests.
func (s *Service) SetSourceFactory(factory SourceFactory) {
	s.sources = factory
}

// RedditAnalyzer exposes the reddit adapter for configuration.
func (s *Service) RedditAnalyzer() *reddit.Analyzer {
	return s.reddit
}

// FreelanceAnalyzer exposes the freelance adapter for configuration.
func (s *Service) FreelanceAnalyzer() *freelance.Analyzer {
	return s.freelance
}

// AnalyzeReddit analyzes subreddits for technology mentions and
// sentiment. Results are cached per parameter set for the UTC day.
func (s *Service) AnalyzeReddit(ctx context.Context, subreddits []string, lookbackDays int, keywords []string) (*domain.RedditAnalysis, error) {
	if len(subreddits) == 0 {
		return nil, &errors.ValidationError{Field: "subreddits", Message: "must contain at least one subreddit"}
	}
	if lookbackDays <= 0 {
		return nil, &errors.ValidationError{Field: "lookback_days", Message: "must be a positive number of days"}
	}
	if len(keywords) == 0 {
		return nil, &errors.ValidationError{Field: "keywords", Message: "must contain at least one keyword"}
	}

	s.logInfo("Analyzing Reddit", map[string]interface{}{
		"subreddits":    subreddits,
		"lookback_days": lookbackDays,
		"keywords":      keywords,
	})

	key := cache.NewKey("reddit").
		List(subreddits).
		Scalar(lookbackDays).
		List(keywords).
		String()

	var result domain.RedditAnalysis
	err := s.store.GetOrFetch(ctx, key, s.ttl, &result, func(ctx context.Context) (interface{}, error) {
		posts := s.reddit.FetchPosts(ctx, subreddits, lookbackDays)
		counter := s.reddit.ExtractTechnologies(posts, keywords)
		sentiment := s.reddit.CalculateSentiment(posts, keywords)
		ranked := s.limit(ranking.Rank(counter))

		status := domain.StatusOK
		if len(posts) == 0 {
			status = domain.StatusNotAvailable
		}

		return domain.RedditAnalysis{
			Date:            today(),
			Subreddits:      subreddits,
			LookbackDays:    lookbackDays,
			TopTechnologies: ranked,
			Sentiment:       sentiment,
			Status:          status,
			Stats: map[string]float64{
				"posts_analyzed":    float64(len(posts)),
				"unique_tech_count": float64(len(ranked)),
			},
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AnalyzeFreelance analyzes freelance marketplaces for skill demand.
func (s *Service) AnalyzeFreelance(ctx context.Context, platforms []string, categories []string) (*domain.FreelanceAnalysis, error) {
	if len(platforms) == 0 {
		return nil, &errors.ValidationError{Field: "platforms", Message: "must contain at least one platform"}
	}

	s.logInfo("Analyzing freelance markets", map[string]interface{}{
		"platforms":  platforms,
		"categories": categories,
	})

	key := cache.NewKey("freelance").
		List(platforms).
		List(categories).
		String()

	var result domain.FreelanceAnalysis
	err := s.store.GetOrFetch(ctx, key, s.ttl, &result, func(ctx context.Context) (interface{}, error) {
		analysis := s.freelance.Analyze(ctx, platforms, categories)
		analysis.Date = today()
		analysis.TopTechnologies = s.limit(analysis.TopTechnologies)
		return analysis, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchTrends fans out to the trend sources, aggregates their ranked
// lists with per-source weights and stores a per-day snapshot under the
// plain trends:{date} key for external lookup.
func (s *Service) SearchTrends(ctx context.Context, keywords []string, timeframe, region string) (*domain.TrendsAnalysis, error) {
	if len(keywords) == 0 {
		return nil, &errors.ValidationError{Field: "keywords", Message: "must contain at least one keyword"}
	}
	if timeframe == "" {
		timeframe = "now 7-d"
	}
	if region == "" {
		region = "US"
	}

	s.logInfo("Searching trends", map[string]interface{}{
		"keywords":  keywords,
		"timeframe": timeframe,
		"region":    region,
	})

	key := cache.NewKey("trends").
		List(keywords).
		Scalar(timeframe).
		Scalar(region).
		String()

	var result domain.TrendsAnalysis
	err := s.store.GetOrFetch(ctx, key, s.ttl, &result, func(ctx context.Context) (interface{}, error) {
		results := s.produceAll(ctx, s.sources(keywords))
		aggregated := s.limit(ranking.Aggregate(results, s.weights))

		sourcesOK := 0
		for _, r := range results {
			if r.Status == domain.StatusOK {
				sourcesOK++
			}
		}

		analysis := domain.TrendsAnalysis{
			Date:            today(),
			Keywords:        keywords,
			Timeframe:       timeframe,
			Region:          region,
			TopTechnologies: aggregated,
			Sources:         results,
			Stats: map[string]float64{
				"sources_total": float64(len(results)),
				"sources_ok":    float64(sourcesOK),
			},
		}

		// Day snapshot, independent of request parameters.
		s.store.Set(ctx, "trends:"+analysis.Date, analysis, s.ttl)

		return analysis, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// produceAll runs every source concurrently, joining results in the
// order the sources were supplied. A failing source contributes its
// own degraded result; it never aborts siblings.
func (s *Service) produceAll(ctx context.Context, srcs []interfaces.Source) []domain.SourceResult {
	results := make([]domain.SourceResult, len(srcs))
	var wg sync.WaitGroup
	for i, src := range srcs {
		wg.Add(1)
		go func(i int, src interfaces.Source) {
			defer wg.Done()
			results[i] = src.Produce(ctx)
		}(i, src)
	}
	wg.Wait()
	return results
}

// HistoricalComparison reads a technology's stored history and computes
// growth rate and anomalies over the requested window.
func (s *Service) HistoricalComparison(ctx context.Context, technology string, daysBack int) (*domain.HistoryComparison, error) {
	tech := normalize.Name(technology)
	if tech == "" {
		return nil, &errors.ValidationError{Field: "technology", Message: "cannot be empty"}
	}
	if daysBack <= 0 {
		daysBack = 30
	}

	history := s.TechnologyHistory(ctx, tech)

	series := history.History
	if len(series) > daysBack {
		series = series[len(series)-daysBack:]
	}

	comparison := &domain.HistoryComparison{
		Technology: tech,
		DaysBack:   daysBack,
		Series:     series,
		Status:     domain.StatusOK,
	}

	if len(series) == 0 {
		comparison.Series = []domain.TrendPoint{}
		comparison.Status = domain.StatusNotAvailable
		return comparison, nil
	}

	values := make([]float64, len(series))
	for i, point := range series {
		values[i] = point.Value
	}

	comparison.GrowthRate = normalize.GrowthRate(series)
	comparison.Anomalies = normalize.DetectAnomalies(values, normalize.DefaultZThreshold)
	if comparison.Anomalies == nil {
		comparison.Anomalies = []int{}
	}

	return comparison, nil
}

// TechnologyHistory returns the stored history for a technology: cache
// first, then the data directory, then an empty payload with a note.
func (s *Service) TechnologyHistory(ctx context.Context, technology string) domain.TechnologyHistory {
	tech := normalize.Name(technology)

	var history domain.TechnologyHistory
	if s.store.Get(ctx, "history:"+tech, &history) {
		return history
	}

	if s.dataDir != "" {
		path := filepath.Join(s.dataDir, fmt.Sprintf("history_%s.json", tech))
		if raw, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(raw, &history); err == nil {
				return history
			}
			s.logWarn("Corrupt history file", map[string]interface{}{
				"path": path,
			})
		}
	}

	return domain.TechnologyHistory{
		Technology: tech,
		History:    []domain.TrendPoint{},
		Note:       "no data",
	}
}

// CachedTrends returns the day snapshot stored under trends:{date}.
func (s *Service) CachedTrends(ctx context.Context, date string) (*domain.TrendsAnalysis, bool) {
	var snapshot domain.TrendsAnalysis
	if !s.store.Get(ctx, "trends:"+date, &snapshot) {
		return nil, false
	}
	return &snapshot, true
}

// InvalidateCache removes cached entries matching the glob pattern and
// returns how many were removed.
func (s *Service) InvalidateCache(ctx context.Context, pattern string) (int, error) {
	if pattern == "" {
		return 0, &errors.ValidationError{Field: "pattern", Message: "cannot be empty"}
	}
	return s.store.Invalidate(ctx, pattern), nil
}

// limit truncates a ranked list to the configured top-N size.
func (s *Service) limit(scores []domain.TechnologyScore) []domain.TechnologyScore {
	if s.topN > 0 && len(scores) > s.topN {
		return scores[:s.topN]
	}
	return scores
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
