package deckscout

import "context"

// Page is a fetched listing page.
type Page struct {
	URL        string
	StatusCode int

	// Header holds response headers, one comma-joined value per name.
	Header map[string]string

	// Body is the response body decoded as UTF-8. Invalid byte sequences
	// are replaced rather than rejected.
	Body string
}

// Fetcher retrieves a page with a single bounded-time GET request.
type Fetcher interface {
	// Fetch performs one GET of url. Network failures, timeouts and
	// non-success statuses are reported as EUNAVAILABLE errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)
}
