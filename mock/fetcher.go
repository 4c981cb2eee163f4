package mock

import (
	"context"

	"github.com/fwojciec/deckscout"
)

var _ deckscout.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of deckscout.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*deckscout.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*deckscout.Page, error) {
	return f.FetchFn(ctx, url)
}
