// ABOUTME: Post domain model for raw Reddit submissions
// ABOUTME: Raw record shape consumed by keyword extraction and sentiment scoring

package domain

import "time"

// Post is a raw Reddit submission within the lookback window.
type Post struct {
	// ID is the submission identifier.
	ID string

	// Title is the submission title.
	Title string

	// Body is the self-text of the submission, HTML stripped.
	Body string

	// Subreddit is the subreddit name without the r/ prefix.
	Subreddit string

	// URL links to the submission.
	URL string

	// Score is the submission score at fetch time.
	Score int

	// Created is the submission creation time in UTC.
	Created time.Time
}

// SentimentScore summarizes lexicon-based sentiment for one keyword.
type SentimentScore struct {
	// AvgSentiment is the total lexicon score normalized per mention.
	AvgSentiment float64 `json:"avg_sentiment"`

	// Mentions counts the posts mentioning the keyword.
	Mentions int `json:"mentions"`
}
