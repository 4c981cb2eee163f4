package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/deckscout"
)

// RetryDelays returns n exponential backoff delays starting at base:
// base, 2*base, 4*base, ...
func RetryDelays(n int, base time.Duration) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	for i := range n {
		delays = append(delays, base<<i)
	}
	return delays
}

var _ deckscout.DeckSource = (*RetryingSource)(nil)

// RetryingSource re-invokes a DeckSource while it returns no candidates,
// waiting Delays[i] before attempt i+2. It makes len(Delays)+1 attempts
// at most.
type RetryingSource struct {
	Source deckscout.DeckSource
	Delays []time.Duration
	Logger *slog.Logger
}

// FetchDecks returns the first non-empty result, or the last empty one.
func (r *RetryingSource) FetchDecks(ctx context.Context, q deckscout.Query) []deckscout.DeckCandidate {
	for attempt := 0; ; attempt++ {
		candidates := r.Source.FetchDecks(ctx, q)
		if len(candidates) > 0 || attempt >= len(r.Delays) {
			return candidates
		}

		if r.Logger != nil {
			r.Logger.Info("retrying empty listing",
				"format", q.Format,
				"region", q.Region,
				"attempt", attempt+2,
				"delay", r.Delays[attempt],
			)
		}

		select {
		case <-ctx.Done():
			return candidates
		case <-time.After(r.Delays[attempt]):
		}
	}
}
