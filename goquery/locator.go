package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deckscout"
	"github.com/fwojciec/deckscout/json"
)

var _ deckscout.EmbeddedDataLocator = (*Locator)(nil)

// Locator finds the embedded data script by its id attribute.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate decodes the first script whose id is deckscout.EmbeddedDataID.
func (l *Locator) Locate(html string) (*deckscout.EmbeddedData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, deckscout.Errorf(deckscout.EINVALID, "failed to parse HTML: %v", err)
	}

	script := doc.Find("script#" + deckscout.EmbeddedDataID).First()
	if script.Length() == 0 {
		return nil, deckscout.Errorf(deckscout.ENOTFOUND, "%s script not found", deckscout.EmbeddedDataID)
	}

	return json.DecodeEmbedded(script.Text())
}
