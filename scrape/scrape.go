// Package scrape orchestrates deck discovery: it fetches a listing page,
// extracts deck anchors from the markup and falls back to the page's
// embedded data when the markup has none.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/deckscout"
	"github.com/google/uuid"
)

// DefaultBaseURL is the deck listing site.
const DefaultBaseURL = "https://piltoverarchive.com"

// DefaultTimeout bounds a single FetchDecks call.
const DefaultTimeout = 30 * time.Second

// ListingPath is the path of the deck listing page.
const ListingPath = "/decks"

// Ensure Scraper implements deckscout.DeckSource.
var _ deckscout.DeckSource = (*Scraper)(nil)

// Scraper lists deck candidates from the listing site. It holds only
// read-only configuration and is safe for concurrent use.
type Scraper struct {
	BaseURL string
	Timeout time.Duration

	Fetcher deckscout.Fetcher
	Anchors deckscout.AnchorExtractor
	Locator deckscout.EmbeddedDataLocator
	Logger  *slog.Logger
}

// ListingURL returns the listing URL for q.
func (s *Scraper) ListingURL(q deckscout.Query) string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	params := url.Values{}
	params.Set("format", q.Format)
	params.Set("region", q.Region)
	return strings.TrimRight(base, "/") + ListingPath + "?" + params.Encode()
}

// FetchDecks fetches the listing for q and returns the deck candidates it
// contains. Anchors in the markup take precedence; embedded data is only
// consulted when there are none. Every failure yields an empty slice.
func (s *Scraper) FetchDecks(ctx context.Context, q deckscout.Query) []deckscout.DeckCandidate {
	q = q.WithDefaults()
	target := s.ListingURL(q)
	logger := s.logger().With(
		"run_id", uuid.NewString(),
		"format", q.Format,
		"region", q.Region,
	)

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page, err := s.Fetcher.Fetch(ctx, target)
	if err != nil || page == nil || page.Body == "" {
		logger.Error("no content fetched", "url", target, "err", err)
		return []deckscout.DeckCandidate{}
	}

	candidates := slices.Collect(s.Anchors.Anchors(page.Body))
	s.Anchors.Legends(page.Body)
	if len(candidates) > 0 {
		return candidates
	}

	logger.Warn("no deck anchors, falling back to embedded data", "url", target)
	candidates = s.fromEmbeddedData(page.Body, logger)
	if len(candidates) == 0 {
		logger.Error("no deck candidates found", "url", target)
		return []deckscout.DeckCandidate{}
	}
	return candidates
}

func (s *Scraper) fromEmbeddedData(html string, logger *slog.Logger) []deckscout.DeckCandidate {
	data, err := s.Locator.Locate(html)
	if err != nil || data == nil {
		logger.Debug("embedded data unavailable", "code", deckscout.ErrorCode(err))
		return nil
	}

	w := deckscout.Walker{
		OnList: func(path string, entries int) {
			logger.Debug("deck list", "path", path, "entries", entries)
		},
	}

	var candidates []deckscout.DeckCandidate
	for c := range w.Walk(data.Value, deckscout.RootPath) {
		logger.Info("json deck candidate",
			"href", c.Href,
			"label", c.Label,
			"source", c.Source,
		)
		candidates = append(candidates, c)
	}
	return candidates
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
