package slog

import (
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/deckscout"
)

// LabelLogLength caps the label length in per-anchor debug logs.
const LabelLogLength = 120

// LegendSampleSize is the number of legend labels included in logs.
const LegendSampleSize = 5

var _ deckscout.AnchorExtractor = (*LoggingAnchorExtractor)(nil)

// LoggingAnchorExtractor wraps an AnchorExtractor with match logging.
type LoggingAnchorExtractor struct {
	next   deckscout.AnchorExtractor
	logger *slog.Logger
}

// NewLoggingAnchorExtractor creates a new LoggingAnchorExtractor.
func NewLoggingAnchorExtractor(next deckscout.AnchorExtractor, logger *slog.Logger) *LoggingAnchorExtractor {
	return &LoggingAnchorExtractor{next: next, logger: logger}
}

// Anchors logs every yielded anchor and, once iteration ends, the total.
func (e *LoggingAnchorExtractor) Anchors(html string) iter.Seq[deckscout.DeckCandidate] {
	return func(yield func(deckscout.DeckCandidate) bool) {
		count := 0
		defer func(begin time.Time) {
			e.logger.Info("anchor extraction",
				"count", count,
				"duration", time.Since(begin),
			)
		}(time.Now())

		for c := range e.next.Anchors(html) {
			count++
			e.logger.Debug("deck anchor",
				"href", c.Href,
				"label", truncate(c.Label, LabelLogLength),
			)
			if !yield(c) {
				return
			}
		}
	}
}

// Legends delegates to the wrapped extractor and logs a sample.
func (e *LoggingAnchorExtractor) Legends(html string) []string {
	legends := e.next.Legends(html)
	if len(legends) == 0 {
		e.logger.Debug("legend labels", "count", 0)
		return legends
	}
	e.logger.Info("legend labels",
		"count", len(legends),
		"sample", legends[:min(len(legends), LegendSampleSize)],
	)
	return legends
}
