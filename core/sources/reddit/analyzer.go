// ABOUTME: Reddit source adapter fetching subreddit listings and scoring mentions
// ABOUTME: Keyword counts plus lexicon-based sentiment over recent posts

package reddit

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"trends-app-api/core/domain"
	"trends-app-api/core/extract"
	"trends-app-api/core/interfaces"
	"trends-app-api/core/ranking"

	"github.com/mmcdole/gofeed"
)

const defaultBaseURL = "https://www.reddit.com"

// positiveWords and negativeWords are the sentiment lexicons. Scoring
// is a stand-in heuristic: +1 per positive token, -1 per negative,
// normalized per mentioning post.
var (
	positiveWords = map[string]bool{
		"great": true, "awesome": true, "love": true, "fast": true,
		"good": true, "win": true, "best": true, "cool": true,
	}
	negativeWords = map[string]bool{
		"bad": true, "hate": true, "slow": true, "bug": true,
		"issue": true, "problem": true, "worst": true,
	}
)

// Analyzer fetches recent subreddit posts and turns them into keyword
// mention counts and sentiment summaries.
type Analyzer struct {
	deps    interfaces.Dependencies
	baseURL string
}

// NewAnalyzer creates a Reddit analyzer.
func NewAnalyzer(deps interfaces.Dependencies) *Analyzer {
	return &Analyzer{deps: deps, baseURL: defaultBaseURL}
}

// SetBaseURL overrides the Reddit base URL, for tests.
func (a *Analyzer) SetBaseURL(base string) {
	a.baseURL = strings.TrimRight(base, "/")
}

// FetchPosts fetches recent posts from the given subreddits within the
// lookback window. Subreddits are fetched concurrently; a subreddit
// that cannot be fetched is logged and contributes nothing, it never
// aborts its siblings.
func (a *Analyzer) FetchPosts(ctx context.Context, subreddits []string, lookbackDays int) []domain.Post {
	threshold := time.Now().UTC().AddDate(0, 0, -lookbackDays)

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		posts []domain.Post
	)

	for _, sub := range subreddits {
		wg.Add(1)
		go func(sub string) {
			defer wg.Done()

			fetched, err := a.fetchSubreddit(ctx, sub, threshold)
			if err != nil {
				a.logWarn("Failed to fetch subreddit", map[string]interface{}{
					"subreddit": sub,
					"error":     err.Error(),
				})
				return
			}

			mu.Lock()
			posts = append(posts, fetched...)
			mu.Unlock()

			a.logDebug("Fetched subreddit", map[string]interface{}{
				"subreddit": sub,
				"posts":     len(fetched),
			})
		}(sub)
	}

	wg.Wait()
	return posts
}

// fetchSubreddit pulls the newest listing of one subreddit via its
// Atom feed and keeps posts created after threshold.
func (a *Analyzer) fetchSubreddit(ctx context.Context, sub string, threshold time.Time) ([]domain.Post, error) {
	if a.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	feedURL := fmt.Sprintf("%s/r/%s/new/.rss", a.baseURL, sub)
	resp, err := a.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("subreddit feed returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		created := time.Now().UTC()
		if item.PublishedParsed != nil {
			created = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			created = item.UpdatedParsed.UTC()
		}
		if created.Before(threshold) {
			continue
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}

		posts = append(posts, domain.Post{
			ID:        item.GUID,
			Title:     item.Title,
			Body:      extract.StripHTML(content),
			Subreddit: sub,
			URL:       item.Link,
			Created:   created,
		})
	}

	return posts, nil
}

// ExtractTechnologies counts keyword occurrences across post titles and
// bodies. Keywords are trimmed and lower-cased; counts accumulate per
// keyword in discovery order for stable ranking.
func (a *Analyzer) ExtractTechnologies(posts []domain.Post, keywords []string) *ranking.Counter {
	counter := ranking.NewCounter()
	if len(posts) == 0 {
		return counter
	}

	for _, post := range posts {
		text := post.Title + " " + post.Body
		for _, raw := range keywords {
			keyword := strings.ToLower(strings.TrimSpace(raw))
			if keyword == "" {
				continue
			}
			if n := extract.Occurrences(text, keyword); n > 0 {
				counter.Add(keyword, float64(n))
			}
		}
	}

	return counter
}

// CalculateSentiment scores each keyword over the posts mentioning it.
func (a *Analyzer) CalculateSentiment(posts []domain.Post, keywords []string) map[string]domain.SentimentScore {
	result := make(map[string]domain.SentimentScore)
	if len(posts) == 0 {
		return result
	}

	for _, raw := range keywords {
		keyword := strings.ToLower(strings.TrimSpace(raw))
		if keyword == "" {
			continue
		}

		totalScore := 0
		mentions := 0
		for _, post := range posts {
			text := strings.ToLower(post.Title + " " + post.Body)
			if !strings.Contains(text, keyword) {
				continue
			}
			totalScore += lexiconScore(text)
			mentions++
		}

		if mentions > 0 {
			result[keyword] = domain.SentimentScore{
				AvgSentiment: float64(totalScore) / float64(mentions),
				Mentions:     mentions,
			}
		}
	}

	return result
}

// lexiconScore sums +1/-1 over lexicon tokens in the text.
func lexiconScore(lowered string) int {
	score := 0
	for _, token := range strings.Fields(lowered) {
		token = strings.Trim(token, ".,!?:;()[]{}\"'")
		if positiveWords[token] {
			score++
		} else if negativeWords[token] {
			score--
		}
	}
	return score
}

func (a *Analyzer) logWarn(msg string, fields map[string]interface{}) {
	if a.deps.Logger != nil {
		a.deps.Logger.Warn(msg, fields)
	}
}

func (a *Analyzer) logDebug(msg string, fields map[string]interface{}) {
	if a.deps.Logger != nil {
		a.deps.Logger.Debug(msg, fields)
	}
}
