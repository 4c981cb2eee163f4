package json

import (
	"io"

	"github.com/fwojciec/deckscout"
	"github.com/go-json-experiment/json"
)

// Record is one line of JSON-lines output.
type Record struct {
	Format string `json:"format"`
	Region string `json:"region"`
	Href   string `json:"href"`
	Label  string `json:"label,omitempty"`
	Source string `json:"source"`
}

// WriteCandidates writes one JSON object per candidate, each on its own line.
func WriteCandidates(w io.Writer, q deckscout.Query, candidates []deckscout.DeckCandidate) error {
	for _, c := range candidates {
		rec := Record{
			Format: q.Format,
			Region: q.Region,
			Href:   c.Href,
			Label:  c.Label,
			Source: c.Source,
		}
		if err := json.MarshalWrite(w, rec); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
