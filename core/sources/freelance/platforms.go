// ABOUTME: Freelance marketplace adapters producing raw job records
// ABOUTME: goquery listing scraper and colly collector behind one Platform interface

package freelance

import (
	"context"
	"fmt"
	"strings"

	"trends-app-api/core/domain"
	"trends-app-api/core/extract"
	"trends-app-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// Platform fetches raw job listings from one marketplace. FetchJobs may
// fail; the analyzer converts failures into a degraded result, they
// never propagate past the adapter boundary.
type Platform interface {
	Name() string
	FetchJobs(ctx context.Context) ([]domain.Job, error)
}

// FreelancerBoard scrapes the public Freelancer.com job search listing.
type FreelancerBoard struct {
	deps    interfaces.Dependencies
	baseURL string
}

// NewFreelancerBoard creates a Freelancer.com adapter.
func NewFreelancerBoard(deps interfaces.Dependencies) *FreelancerBoard {
	return &FreelancerBoard{deps: deps, baseURL: "https://www.freelancer.com/jobs"}
}

// SetBaseURL overrides the listing URL, for tests.
func (b *FreelancerBoard) SetBaseURL(url string) {
	b.baseURL = url
}

// Name returns the platform identifier.
func (b *FreelancerBoard) Name() string {
	return "freelancer"
}

// FetchJobs fetches and parses the job search listing.
func (b *FreelancerBoard) FetchJobs(ctx context.Context) ([]domain.Job, error) {
	if b.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := b.deps.HTTPClient.Get(ctx, b.baseURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("job listing returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, err
	}

	var jobs []domain.Job
	doc.Find(".JobSearchCard-item").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(".JobSearchCard-primary-heading-link").Text())
		if title == "" {
			return
		}

		description := strings.TrimSpace(card.Find(".JobSearchCard-primary-description").Text())

		var skills []string
		card.Find(".JobSearchCard-primary-tagsLink").Each(func(_ int, tag *goquery.Selection) {
			if skill := strings.TrimSpace(tag.Text()); skill != "" {
				skills = append(skills, skill)
			}
		})

		job := domain.Job{
			Title:       title,
			Description: description,
			Skills:      skills,
			Platform:    b.Name(),
		}

		priceText := card.Find(".JobSearchCard-primary-price").Text()
		if rate, ok := extract.HourlyRate(priceText); ok {
			job.HourlyRate = rate
			job.HasRate = true
		} else if rate, ok := extract.HourlyRate(description); ok {
			job.HourlyRate = rate
			job.HasRate = true
		}

		if href, ok := card.Find(".JobSearchCard-primary-heading-link").Attr("href"); ok {
			job.URL = href
		}

		jobs = append(jobs, job)
	})

	return jobs, nil
}

// UpworkBoard crawls an Upwork-style job board with a colly collector.
type UpworkBoard struct {
	logger    interfaces.Logger
	baseURL   string
	userAgent string
}

// NewUpworkBoard creates an Upwork adapter.
func NewUpworkBoard(logger interfaces.Logger, userAgent string) *UpworkBoard {
	return &UpworkBoard{
		logger:    logger,
		baseURL:   "https://www.upwork.com/nx/search/jobs/",
		userAgent: userAgent,
	}
}

// SetBaseURL overrides the board URL, for tests.
func (b *UpworkBoard) SetBaseURL(url string) {
	b.baseURL = url
}

// Name returns the platform identifier.
func (b *UpworkBoard) Name() string {
	return "upwork"
}

// FetchJobs crawls the job board listing page.
func (b *UpworkBoard) FetchJobs(ctx context.Context) ([]domain.Job, error) {
	collector := colly.NewCollector(
		colly.UserAgent(b.userAgent),
		colly.MaxDepth(1),
	)

	var jobs []domain.Job
	collector.OnHTML("section[data-test=JobTile], article.job-tile", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText("h2, h4"))
		if title == "" {
			return
		}

		description := strings.TrimSpace(e.ChildText("[data-test=JobDescription], .job-description"))
		skills := e.ChildTexts("[data-test=TokenClamp] a, .skill-badge")

		job := domain.Job{
			Title:       title,
			Description: description,
			Skills:      skills,
			Platform:    b.Name(),
			URL:         e.Request.AbsoluteURL(e.ChildAttr("a", "href")),
		}

		if rate, ok := extract.HourlyRate(e.ChildText("[data-test=JobInfo], .job-price") + " " + description); ok {
			job.HourlyRate = rate
			job.HasRate = true
		}

		jobs = append(jobs, job)
	})

	var crawlErr error
	collector.OnError(func(_ *colly.Response, err error) {
		crawlErr = err
	})

	if err := collector.Visit(b.baseURL); err != nil {
		return nil, err
	}
	collector.Wait()

	if crawlErr != nil && len(jobs) == 0 {
		return nil, crawlErr
	}
	return jobs, nil
}
