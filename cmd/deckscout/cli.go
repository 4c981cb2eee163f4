package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/deckscout"
	"github.com/fwojciec/deckscout/bloom"
	"github.com/fwojciec/deckscout/json"
	"github.com/fwojciec/deckscout/scrape"
)

// Parser names accepted by --parser.
const (
	ParserRegex   = "regex"
	ParserGoquery = "goquery"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Source deckscout.DeckSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Format      []string      `short:"f" env:"DECKSCOUT_FORMAT" help:"Deck format to list (repeatable, default: standard)"`
	Region      []string      `short:"r" env:"DECKSCOUT_REGION" help:"Region to list (repeatable, default: americas)"`
	BaseURL     string        `name:"base-url" default:"${base_url}" env:"DECKSCOUT_BASE_URL" help:"Listing site base URL"`
	Timeout     time.Duration `short:"t" default:"30s" env:"DECKSCOUT_TIMEOUT" help:"Timeout per listing"`
	UserAgent   string        `name:"user-agent" default:"${user_agent}" env:"DECKSCOUT_USER_AGENT" help:"User-Agent header sent with requests"`
	Parser      string        `enum:"regex,goquery" default:"regex" env:"DECKSCOUT_PARSER" help:"HTML extraction strategy (${enum})"`
	JSON        bool          `name:"json" help:"Write JSON lines instead of tab-separated text"`
	Dedupe      bool          `help:"Drop repeated deck links within a listing"`
	Concurrency int           `short:"c" default:"4" env:"DECKSCOUT_CONCURRENCY" help:"Listings fetched at once"`
	Retries     int           `default:"0" env:"DECKSCOUT_RETRIES" help:"Retries for a listing that yields no decks"`
	RetryDelay  time.Duration `name:"retry-delay" default:"1s" help:"Delay before the first retry, doubled after each"`
	Verbose     bool          `short:"v" help:"Log debug diagnostics to stderr"`
}

// validate checks flag values kong cannot constrain by tag.
func (c *CLI) validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative")
	}
	return nil
}

// Queries returns every format and region combination in flag order.
func (c *CLI) Queries() []deckscout.Query {
	formats := c.Format
	if len(formats) == 0 {
		formats = []string{deckscout.DefaultFormat}
	}
	regions := c.Region
	if len(regions) == 0 {
		regions = []string{deckscout.DefaultRegion}
	}

	queries := make([]deckscout.Query, 0, len(formats)*len(regions))
	for _, f := range formats {
		for _, r := range regions {
			queries = append(queries, deckscout.Query{Format: f, Region: r})
		}
	}
	return queries
}

// Run fetches every listing and writes the candidates to stdout and a
// per-listing summary to stderr. An empty listing is not an error.
func (c *CLI) Run(deps *Dependencies) error {
	results := scrape.FetchAll(deps.Ctx, deps.Source, c.Queries(), c.Concurrency)

	for _, result := range results {
		candidates := result.Candidates
		if c.Dedupe {
			candidates = bloom.Dedupe(candidates)
		}

		if err := c.write(deps.Stdout, result.Query, candidates); err != nil {
			return fmt.Errorf("writing %s/%s: %w", result.Query.Format, result.Query.Region, err)
		}
		fmt.Fprintf(deps.Stderr, "%s/%s: %d decks\n", result.Query.Format, result.Query.Region, len(candidates))
	}
	return nil
}

func (c *CLI) write(w io.Writer, q deckscout.Query, candidates []deckscout.DeckCandidate) error {
	if c.JSON {
		return json.WriteCandidates(w, q, candidates)
	}
	for _, cand := range candidates {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", cand.Href, cand.Label, cand.Source); err != nil {
			return err
		}
	}
	return nil
}
