package deckscout

import (
	"regexp"
	"strings"
)

// DeckPathPrefix is the path fragment every deck link carries.
const DeckPathPrefix = "/decks/view/"

// SourceHTMLAnchor marks candidates found in the static markup.
const SourceHTMLAnchor = "html-anchor"

// deckHrefRe matches a path identifying a single deck: the prefix followed
// by an identifier made of hex digits and hyphens.
var deckHrefRe = regexp.MustCompile(`(?i)^/decks/view/[0-9a-f-]+$`)

// DeckCandidate is a link believed to identify a single deck.
// Candidates are plain values and are never modified after creation.
type DeckCandidate struct {
	// Href is the deck link. Always set.
	Href string `json:"href"`

	// Label is a human-readable name. Empty means no label was found.
	Label string `json:"label,omitempty"`

	// Source is SourceHTMLAnchor or the structural path of the JSON node
	// the candidate came from (e.g. "root.props.decks[2]").
	Source string `json:"source"`
}

// HasLabel reports whether a label was associated with the link.
func (c DeckCandidate) HasLabel() bool {
	return c.Label != ""
}

// IsDeckHref reports whether href is exactly a deck path.
func IsDeckHref(href string) bool {
	return deckHrefRe.MatchString(href)
}

// ContainsDeckPath reports whether s contains the deck path fragment anywhere.
// JSON payloads often carry absolute URLs, so the JSON path uses this looser check.
func ContainsDeckPath(s string) bool {
	return strings.Contains(s, DeckPathPrefix)
}

// CleanLabel strips nested tags from an HTML fragment, collapses whitespace
// and trims the ends. An empty result means no label.
func CleanLabel(fragment string) string {
	if fragment == "" {
		return ""
	}
	text := tagRe.ReplaceAllString(fragment, " ")
	return strings.Join(strings.Fields(text), " ")
}

var tagRe = regexp.MustCompile(`<[^>]+>`)
