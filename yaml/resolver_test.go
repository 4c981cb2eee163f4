package yaml_test

import (
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/deckscout"
	dsyaml "github.com/fwojciec/deckscout/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type config struct {
	BaseURL     string        `name:"base-url" default:"https://default.example"`
	Timeout     time.Duration `default:"30s"`
	Format      []string
	Concurrency int  `default:"4"`
	JSON        bool `name:"json"`
}

func parse(t *testing.T, doc string, args ...string) *config {
	t.Helper()

	resolver, err := dsyaml.Loader(strings.NewReader(doc))
	require.NoError(t, err)

	cfg := &config{}
	parser, err := kong.New(cfg, kong.Resolvers(resolver), kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cfg
}

func TestLoader(t *testing.T) {
	t.Parallel()

	t.Run("resolves snake_case keys", func(t *testing.T) {
		t.Parallel()

		cfg := parse(t, `
base_url: http://localhost:9000
timeout: 5s
concurrency: 8
json: true
`)

		assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.True(t, cfg.JSON)
	})

	t.Run("resolves flag-name keys", func(t *testing.T) {
		t.Parallel()

		cfg := parse(t, "base-url: http://localhost:9001\n")

		assert.Equal(t, "http://localhost:9001", cfg.BaseURL)
	})

	t.Run("resolves lists", func(t *testing.T) {
		t.Parallel()

		cfg := parse(t, "format: [standard, eternal]\n")

		assert.Equal(t, []string{"standard", "eternal"}, cfg.Format)
	})

	t.Run("command line takes precedence", func(t *testing.T) {
		t.Parallel()

		cfg := parse(t, "base_url: http://from-file\n", "--base-url", "http://from-flag")

		assert.Equal(t, "http://from-flag", cfg.BaseURL)
	})

	t.Run("keeps defaults for empty document", func(t *testing.T) {
		t.Parallel()

		cfg := parse(t, "")

		assert.Equal(t, "https://default.example", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("rejects malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := dsyaml.Loader(strings.NewReader("base_url: [unclosed"))

		require.Error(t, err)
		assert.Equal(t, deckscout.EINVALID, deckscout.ErrorCode(err))
	})
}
