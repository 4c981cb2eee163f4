package slog

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// RedactedValue replaces the value of sensitive headers in log output.
const RedactedValue = "***REDACTED***"

var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
	"x-auth-token":        true,
	"x-csrf-token":        true,
}

// headerAttr groups headers under "headers" in name order, masking the
// values of credential-bearing headers.
func headerAttr(h map[string]string) slog.Attr {
	attrs := make([]any, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		value := h[name]
		if sensitiveHeaders[strings.ToLower(name)] {
			value = RedactedValue
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}
