// Package slog provides log/slog decorators for the deckscout interfaces.
// Implementations elsewhere stay silent; all diagnostics are emitted here.
package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/deckscout"
)

// PreviewLength is the number of characters of a fetched body logged at
// debug level.
const PreviewLength = 500

// Ensure LoggingFetcher implements deckscout.Fetcher.
var _ deckscout.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging. Failures are logged
// as warnings since the caller is expected to handle them.
type LoggingFetcher struct {
	next   deckscout.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next deckscout.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *deckscout.Page, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Warn("fetch failed",
				"url", url,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		if page == nil {
			f.logger.Warn("fetch returned no page", "url", url, "duration", time.Since(begin))
			return
		}
		f.logger.Info("fetch",
			"url", url,
			"status", page.StatusCode,
			"bytes", len(page.Body),
			"duration", time.Since(begin),
			headerAttr(page.Header),
		)
		f.logger.Debug("fetch body",
			"url", url,
			"fingerprint", strconv.FormatUint(xxhash.Sum64String(page.Body), 16),
			"preview", truncate(page.Body, PreviewLength),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
