// ABOUTME: GitHub trending source adapter scraping the public trending page
// ABOUTME: Scores keywords against trending repository names and languages

package trends

import (
	"context"
	"fmt"
	"strings"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
	"trends-app-api/core/normalize"
	"trends-app-api/core/ranking"

	"github.com/PuerkitoBio/goquery"
)

// GitHubTrending scrapes github.com/trending and scores the requested
// keywords by how many trending repositories match them (by primary
// language or repository name).
type GitHubTrending struct {
	deps     interfaces.Dependencies
	keywords []string
	baseURL  string
}

// NewGitHubTrending creates a GitHub trending source for one request's
// keywords.
func NewGitHubTrending(deps interfaces.Dependencies, keywords []string) *GitHubTrending {
	return &GitHubTrending{
		deps:     deps,
		keywords: normalize.Names(keywords),
		baseURL:  "https://github.com/trending",
	}
}

// SetBaseURL overrides the trending URL, for tests.
func (g *GitHubTrending) SetBaseURL(url string) {
	g.baseURL = url
}

// Name returns the source identifier.
func (g *GitHubTrending) Name() string {
	return "github"
}

// Produce scrapes the trending page. Any upstream failure yields a
// not_available result, never an error.
func (g *GitHubTrending) Produce(ctx context.Context) domain.SourceResult {
	counter, scanned, err := g.scan(ctx)
	if err != nil {
		if g.deps.Logger != nil {
			g.deps.Logger.Warn("GitHub trending unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return domain.Unavailable(g.Name())
	}

	return domain.SourceResult{
		Source:          g.Name(),
		TopTechnologies: ranking.Rank(counter),
		Status:          domain.StatusOK,
		Stats: map[string]float64{
			"repos_scanned": float64(scanned),
		},
	}
}

func (g *GitHubTrending) scan(ctx context.Context) (*ranking.Counter, int, error) {
	if g.deps.HTTPClient == nil {
		return nil, 0, fmt.Errorf("HTTP client not configured")
	}

	resp, err := g.deps.HTTPClient.Get(ctx, g.baseURL)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, 0, fmt.Errorf("trending page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, 0, err
	}

	counter := ranking.NewCounter()
	scanned := 0
	doc.Find("article.Box-row").Each(func(_ int, repo *goquery.Selection) {
		scanned++

		name := strings.ToLower(strings.Join(strings.Fields(repo.Find("h2 a").Text()), ""))
		language := normalize.Name(repo.Find("[itemprop=programmingLanguage]").Text())

		for _, keyword := range g.keywords {
			if keyword == language || strings.Contains(name, keyword) {
				counter.Add(keyword, 1)
			}
		}
	})

	return counter, scanned, nil
}
