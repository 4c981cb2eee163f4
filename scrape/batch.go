package scrape

import (
	"context"

	"github.com/fwojciec/deckscout"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of listings fetched at once by FetchAll.
const DefaultConcurrency = 4

// Result holds the candidates found for one query.
type Result struct {
	Query      deckscout.Query
	Candidates []deckscout.DeckCandidate
}

// FetchAll runs src.FetchDecks for every query with at most concurrency
// calls in flight. Results are returned in query order. Each call is an
// independent pipeline; an empty result for one query does not affect the
// others.
func FetchAll(ctx context.Context, src deckscout.DeckSource, queries []deckscout.Query, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(queries))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, q := range queries {
		q = q.WithDefaults()
		g.Go(func() error {
			results[i] = Result{
				Query:      q,
				Candidates: src.FetchDecks(ctx, q),
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
