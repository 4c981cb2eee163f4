// Package regexp implements deck extraction with lenient regular expressions
// run directly over the raw markup. The patterns do not validate the
// document; they match anchors and script blocks wherever they occur.
package regexp

import (
	"iter"
	"regexp"

	"github.com/fwojciec/deckscout"
)

var (
	deckLinkRe  = regexp.MustCompile(`(?is)<a[^>]+href="(/decks/view/[0-9a-f-]+)"[^>]*>(.*?)</a>`)
	legendImgRe = regexp.MustCompile(`(?i)<img[^>]+alt="([^"]+)"`)
)

var _ deckscout.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor finds deck anchors with a regular expression.
type AnchorExtractor struct{}

// NewAnchorExtractor creates a new AnchorExtractor.
func NewAnchorExtractor() *AnchorExtractor {
	return &AnchorExtractor{}
}

// Anchors yields one candidate per matching anchor in document order.
// The inner text may span lines and contain nested markup.
func (e *AnchorExtractor) Anchors(html string) iter.Seq[deckscout.DeckCandidate] {
	return func(yield func(deckscout.DeckCandidate) bool) {
		for _, m := range deckLinkRe.FindAllStringSubmatch(html, -1) {
			c := deckscout.DeckCandidate{
				Href:   m[1],
				Label:  deckscout.CleanLabel(m[2]),
				Source: deckscout.SourceHTMLAnchor,
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Legends returns the alt text of every image carrying one.
func (e *AnchorExtractor) Legends(html string) []string {
	var legends []string
	for _, m := range legendImgRe.FindAllStringSubmatch(html, -1) {
		legends = append(legends, m[1])
	}
	return legends
}
