package mock

import (
	"context"

	"github.com/fwojciec/deckscout"
)

var _ deckscout.DeckSource = (*DeckSource)(nil)

// DeckSource is a mock implementation of deckscout.DeckSource.
type DeckSource struct {
	FetchDecksFn func(ctx context.Context, q deckscout.Query) []deckscout.DeckCandidate
}

func (s *DeckSource) FetchDecks(ctx context.Context, q deckscout.Query) []deckscout.DeckCandidate {
	return s.FetchDecksFn(ctx, q)
}
