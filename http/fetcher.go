// Package http provides an HTTP-based implementation of deckscout.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/deckscout"
	"golang.org/x/text/encoding/unicode"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the scraper to the listing site.
const DefaultUserAgent = "Mozilla/5.0 (compatible; BuyLystDeckScraper/1.0)"

// Ensure Fetcher implements deckscout.Fetcher at compile time.
var _ deckscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves listing pages using plain HTTP GET requests.
// It performs no retries. Fetcher is safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient sets the HTTP client used for requests. The client's own
// Timeout is left untouched.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the page at url. Any transport failure or non-2xx status
// is returned as an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*deckscout.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, deckscout.Errorf(deckscout.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, deckscout.Errorf(deckscout.EUNAVAILABLE, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, deckscout.Errorf(deckscout.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, deckscout.Errorf(deckscout.EUNAVAILABLE, "reading body of %s: %v", url, err)
	}

	body, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, deckscout.Errorf(deckscout.EINTERNAL, "decoding body of %s: %v", url, err)
	}

	return &deckscout.Page{
		URL:        url,
		StatusCode: resp.StatusCode,
		Header:     flattenHeader(resp.Header),
		Body:       string(body),
	}, nil
}

func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		out[name] = strings.Join(values, ", ")
	}
	return out
}
