// ABOUTME: Job domain model for freelance marketplace listings
// ABOUTME: Raw record shape consumed by skill tallying and rate averaging

package domain

// Job is a raw freelance job listing from one marketplace.
type Job struct {
	// Title is the listing title.
	Title string

	// Description is the listing body text.
	Description string

	// Skills holds the explicitly tagged skills, when the marketplace
	// exposes them. Empty slices fall back to text extraction.
	Skills []string

	// HourlyRate is the parsed hourly rate in dollars, valid only when
	// HasRate is true.
	HourlyRate float64

	// HasRate reports whether a rate could be parsed for this listing.
	HasRate bool

	// Platform identifies the marketplace the job came from.
	Platform string

	// URL links to the listing.
	URL string
}
