// Package goquery implements deck extraction on a parsed HTML tree using
// github.com/PuerkitoBio/goquery. It is a drop-in alternative to the
// pattern-based extractors in package regexp.
package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deckscout"
	"golang.org/x/net/html"
)

var _ deckscout.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor finds deck anchors with CSS selectors.
// Labels are the anchor's text nodes joined by spaces, with character
// references resolved.
type AnchorExtractor struct{}

// NewAnchorExtractor creates a new AnchorExtractor.
func NewAnchorExtractor() *AnchorExtractor {
	return &AnchorExtractor{}
}

// Anchors yields one candidate per anchor whose href is a deck path,
// in document order. An unparsable document yields nothing.
func (e *AnchorExtractor) Anchors(html string) iter.Seq[deckscout.DeckCandidate] {
	return func(yield func(deckscout.DeckCandidate) bool) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return
		}

		doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			if !deckscout.IsDeckHref(href) {
				return true
			}
			return yield(deckscout.DeckCandidate{
				Href:   href,
				Label:  label(sel),
				Source: deckscout.SourceHTMLAnchor,
			})
		})
	}
}

// label joins the text nodes under sel with single spaces so that adjacent
// inline elements stay separate words.
func label(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Legends returns the non-empty alt text of every image.
func (e *AnchorExtractor) Legends(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var legends []string
	doc.Find("img[alt]").Each(func(_ int, sel *goquery.Selection) {
		if alt, _ := sel.Attr("alt"); alt != "" {
			legends = append(legends, alt)
		}
	})
	return legends
}
