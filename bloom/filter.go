// Package bloom removes repeated deck links using Bloom filters.
// Deduplication is a post-processing step; extraction itself keeps
// every occurrence.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/deckscout"
)

// DefaultFalsePositiveRate is the rate used by Dedupe. At this rate a
// distinct href is dropped with negligible probability for listing-sized
// inputs.
const DefaultFalsePositiveRate = 1e-9

// Filter records deck hrefs that have been seen.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected hrefs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, 1), fpRate),
	}
}

// TestAndAdd records href and reports whether it might have been
// recorded before. False positives are possible; false negatives are not.
func (f *Filter) TestAndAdd(href string) bool {
	return f.f.TestAndAddString(href)
}

// Dedupe returns candidates with repeated hrefs removed, keeping the first
// occurrence of each. Order is preserved.
func Dedupe(candidates []deckscout.DeckCandidate) []deckscout.DeckCandidate {
	f := NewFilter(uint(len(candidates)), DefaultFalsePositiveRate)
	out := make([]deckscout.DeckCandidate, 0, len(candidates))
	for _, c := range candidates {
		if f.TestAndAdd(c.Href) {
			continue
		}
		out = append(out, c)
	}
	return out
}
