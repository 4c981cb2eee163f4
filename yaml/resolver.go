// Package yaml loads CLI configuration files into kong resolvers using
// gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/deckscout"
	"gopkg.in/yaml.v3"
)

// Loader reads a YAML mapping of flag names to values. Keys may use the
// flag's own name or its snake_case form (base_url for --base-url).
// Lists become comma-separated values. An empty document resolves nothing.
//
// Loader satisfies kong.ConfigurationLoader.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, deckscout.Errorf(deckscout.EINVALID, "invalid config file: %v", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		raw, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]
		if !ok {
			raw, ok = values[flag.Name]
		}
		if !ok || raw == nil {
			return nil, nil
		}
		return flatten(raw), nil
	}), nil
}

func flatten(v any) string {
	list, ok := v.([]any)
	if !ok {
		return fmt.Sprint(v)
	}
	items := make([]string, len(list))
	for i, item := range list {
		items[i] = fmt.Sprint(item)
	}
	return strings.Join(items, ",")
}
