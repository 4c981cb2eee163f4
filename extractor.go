package deckscout

import "iter"

// AnchorExtractor finds deck links directly in static markup.
type AnchorExtractor interface {
	// Anchors yields a candidate for every anchor whose href is a deck path,
	// in document order, labelled with the anchor's cleaned inner text.
	// A document without matches yields nothing.
	Anchors(html string) iter.Seq[DeckCandidate]

	// Legends returns the alt text of images in the document.
	// It is a diagnostic signal only and never produces candidates.
	Legends(html string) []string
}

// EmbeddedData is a located and decoded inline payload.
type EmbeddedData struct {
	// Raw is the script content as it appears in the document.
	Raw string

	// Value is the decoded payload.
	Value Value
}

// EmbeddedDataLocator finds the inline script carrying server-rendered
// application state and decodes it.
type EmbeddedDataLocator interface {
	// Locate returns the decoded payload. It returns ENOTFOUND when the
	// document has no such script and EINVALID when its content is not
	// valid JSON after HTML unescaping.
	Locate(html string) (*EmbeddedData, error)
}

// EmbeddedDataID is the id attribute of the script holding the payload.
const EmbeddedDataID = "__NEXT_DATA__"
