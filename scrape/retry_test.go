package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/deckscout"
	"github.com/fwojciec/deckscout/mock"
	"github.com/fwojciec/deckscout/scrape"
	"github.com/stretchr/testify/assert"
)

func TestRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, scrape.RetryDelays(3, time.Second))
	assert.Empty(t, scrape.RetryDelays(0, time.Second))
}

func TestRetryingSource_FetchDecks(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty result", func(t *testing.T) {
		t.Parallel()

		calls := 0
		src := &scrape.RetryingSource{
			Source: &mock.DeckSource{FetchDecksFn: func(ctx context.Context, q deckscout.Query) []deckscout.DeckCandidate {
				calls++
				if calls < 3 {
					return []deckscout.DeckCandidate{}
				}
				return []deckscout.DeckCandidate{{Href: "/decks/view/ab"}}
			}},
			Delays: []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
		}

		got := src.FetchDecks(context.Background(), deckscout.Query{})

		assert.Equal(t, 3, calls)
		assert.Len(t, got, 1)
	})

	t.Run("gives up after all delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		src := &scrape.RetryingSource{
			Source: &mock.DeckSource{FetchDecksFn: func(ctx context.Context, q deckscout.Query) []deckscout.DeckCandidate {
				calls++
				return []deckscout.DeckCandidate{}
			}},
			Delays: []time.Duration{time.Millisecond, time.Millisecond},
		}

		got := src.FetchDecks(context.Background(), deckscout.Query{})

		assert.Equal(t, 3, calls)
		assert.Empty(t, got)
	})

	t.Run("does not retry without delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		src := &scrape.RetryingSource{
			Source: &mock.DeckSource{FetchDecksFn: func(ctx context.Context, q deckscout.Query) []deckscout.DeckCandidate {
				calls++
				return nil
			}},
		}

		src.FetchDecks(context.Background(), deckscout.Query{})

		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		src := &scrape.RetryingSource{
			Source: &mock.DeckSource{FetchDecksFn: func(ctx context.Context, q deckscout.Query) []deckscout.DeckCandidate {
				calls++
				cancel()
				return nil
			}},
			Delays: []time.Duration{time.Hour},
		}

		start := time.Now()
		src.FetchDecks(ctx, deckscout.Query{})

		assert.Equal(t, 1, calls)
		assert.Less(t, time.Since(start), time.Second)
	})
}
