package mock

import (
	"iter"

	"github.com/fwojciec/deckscout"
)

var _ deckscout.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor is a mock implementation of deckscout.AnchorExtractor.
type AnchorExtractor struct {
	AnchorsFn func(html string) iter.Seq[deckscout.DeckCandidate]
	LegendsFn func(html string) []string
}

func (e *AnchorExtractor) Anchors(html string) iter.Seq[deckscout.DeckCandidate] {
	return e.AnchorsFn(html)
}

func (e *AnchorExtractor) Legends(html string) []string {
	return e.LegendsFn(html)
}

var _ deckscout.EmbeddedDataLocator = (*Locator)(nil)

// Locator is a mock implementation of deckscout.EmbeddedDataLocator.
type Locator struct {
	LocateFn func(html string) (*deckscout.EmbeddedData, error)
}

func (l *Locator) Locate(html string) (*deckscout.EmbeddedData, error) {
	return l.LocateFn(html)
}
