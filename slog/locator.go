package slog

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/deckscout"
)

// TopKeysLimit caps the number of top-level payload keys logged.
const TopKeysLimit = 10

var _ deckscout.EmbeddedDataLocator = (*LoggingLocator)(nil)

// LoggingLocator wraps an EmbeddedDataLocator with payload logging.
type LoggingLocator struct {
	next   deckscout.EmbeddedDataLocator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next deckscout.EmbeddedDataLocator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator. A missing or malformed payload
// is logged as a warning.
func (l *LoggingLocator) Locate(html string) (data *deckscout.EmbeddedData, err error) {
	defer func(begin time.Time) {
		switch {
		case err == nil && data == nil:
			l.logger.Warn("embedded data missing", "duration", time.Since(begin))
		case err == nil:
			attrs := []any{
				"bytes", len(data.Raw),
				"duration", time.Since(begin),
			}
			if obj, ok := data.Value.(deckscout.Object); ok {
				keys := obj.Keys()
				attrs = append(attrs, "keys", keys[:min(len(keys), TopKeysLimit)])
			}
			l.logger.Debug("embedded data", attrs...)
		case deckscout.ErrorCode(err) == deckscout.ENOTFOUND:
			l.logger.Warn("embedded data not found",
				"scripts", strings.Count(strings.ToLower(html), "<script"),
				"duration", time.Since(begin),
			)
		default:
			l.logger.Warn("embedded data malformed",
				"duration", time.Since(begin),
				"err", err,
			)
		}
	}(time.Now())
	return l.next.Locate(html)
}
