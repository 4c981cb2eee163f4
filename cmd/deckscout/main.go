package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/deckscout"
	dsgoquery "github.com/fwojciec/deckscout/goquery"
	dshttp "github.com/fwojciec/deckscout/http"
	dsregexp "github.com/fwojciec/deckscout/regexp"
	"github.com/fwojciec/deckscout/scrape"
	dsslog "github.com/fwojciec/deckscout/slog"
	dsyaml "github.com/fwojciec/deckscout/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPaths are YAML files consulted for flag values, in order.
	// Missing files are skipped.
	ConfigPaths []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{".deckscout.yaml", "~/.config/deckscout/config.yaml"},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("deckscout"),
		kong.Description("List deck links from the deck listing site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"base_url":   scrape.DefaultBaseURL,
			"user_agent": dshttp.DefaultUserAgent,
		},
		kong.Configuration(dsyaml.Loader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if err := cli.validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	anchors, locator := newExtractors(cli.Parser)
	fetcher := dshttp.NewFetcher(
		dshttp.WithTimeout(cli.Timeout),
		dshttp.WithUserAgent(cli.UserAgent),
	)

	scraper := &scrape.Scraper{
		BaseURL: cli.BaseURL,
		Timeout: cli.Timeout,
		Fetcher: dsslog.NewLoggingFetcher(fetcher, logger),
		Anchors: dsslog.NewLoggingAnchorExtractor(anchors, logger),
		Locator: dsslog.NewLoggingLocator(locator, logger),
		Logger:  logger,
	}

	var source deckscout.DeckSource = scraper
	if cli.Retries > 0 {
		source = &scrape.RetryingSource{
			Source: scraper,
			Delays: scrape.RetryDelays(cli.Retries, cli.RetryDelay),
			Logger: logger,
		}
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Source: source,
	}

	return cli.Run(deps)
}

func newExtractors(parser string) (deckscout.AnchorExtractor, deckscout.EmbeddedDataLocator) {
	if parser == ParserGoquery {
		return dsgoquery.NewAnchorExtractor(), dsgoquery.NewLocator()
	}
	return dsregexp.NewAnchorExtractor(), dsregexp.NewLocator()
}
