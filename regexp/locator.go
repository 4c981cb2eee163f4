package regexp

import (
	"regexp"

	"github.com/fwojciec/deckscout"
	"github.com/fwojciec/deckscout/json"
)

var embeddedDataRe = regexp.MustCompile(`(?is)<script[^>]+id="__NEXT_DATA__"[^>]*>(.*?)</script>`)

var _ deckscout.EmbeddedDataLocator = (*Locator)(nil)

// Locator finds the embedded data script with a regular expression.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate decodes the first embedded data script in the document.
func (l *Locator) Locate(html string) (*deckscout.EmbeddedData, error) {
	m := embeddedDataRe.FindStringSubmatch(html)
	if m == nil {
		return nil, deckscout.Errorf(deckscout.ENOTFOUND, "%s script not found", deckscout.EmbeddedDataID)
	}
	return json.DecodeEmbedded(m[1])
}
