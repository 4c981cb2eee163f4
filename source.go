package deckscout

import "context"

// Default listing query parameters.
const (
	DefaultFormat = "standard"
	DefaultRegion = "americas"
)

// Query selects one deck listing.
type Query struct {
	Format string
	Region string
}

// WithDefaults returns q with empty fields replaced by DefaultFormat and DefaultRegion.
func (q Query) WithDefaults() Query {
	if q.Format == "" {
		q.Format = DefaultFormat
	}
	if q.Region == "" {
		q.Region = DefaultRegion
	}
	return q
}

// DeckSource lists deck candidates for a format and region.
type DeckSource interface {
	// FetchDecks never fails: every failure degrades to an empty result.
	// An empty result is a legitimate outcome, not an error.
	FetchDecks(ctx context.Context, q Query) []DeckCandidate
}
