package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/deckscout"
	"github.com/fwojciec/deckscout/mock"
	dsslog "github.com/fwojciec/deckscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("logs payload size and top-level keys", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var obj deckscout.Object
		for _, k := range []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10", "k11", "k12"} {
			obj = append(obj, deckscout.Member{Key: k, Value: deckscout.Null{}})
		}
		inner := &mock.Locator{LocateFn: func(string) (*deckscout.EmbeddedData, error) {
			return &deckscout.EmbeddedData{Raw: `{"k1":null}`, Value: obj}, nil
		}}

		data, err := dsslog.NewLoggingLocator(inner, debugLogger(&buf)).Locate("<html>")

		require.NoError(t, err)
		assert.Equal(t, obj, data.Value)
		output := buf.String()
		assert.Contains(t, output, "msg=\"embedded data\" bytes=11")
		assert.Contains(t, output, "keys=\"[k1 k2 k3 k4 k5 k6 k7 k8 k9 k10]\"")
	})

	t.Run("omits keys for non-object payloads", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Locator{LocateFn: func(string) (*deckscout.EmbeddedData, error) {
			return &deckscout.EmbeddedData{Raw: `[]`, Value: deckscout.Array{}}, nil
		}}

		_, err := dsslog.NewLoggingLocator(inner, debugLogger(&buf)).Locate("")

		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "keys=")
	})

	t.Run("logs a missing payload as warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Locator{LocateFn: func(string) (*deckscout.EmbeddedData, error) {
			return nil, nil
		}}

		data, err := dsslog.NewLoggingLocator(inner, debugLogger(&buf)).Locate("")

		require.NoError(t, err)
		assert.Nil(t, data)
		assert.Contains(t, buf.String(), "level=WARN msg=\"embedded data missing\"")
	})

	t.Run("logs script census when not found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Locator{LocateFn: func(string) (*deckscout.EmbeddedData, error) {
			return nil, deckscout.Errorf(deckscout.ENOTFOUND, "not found")
		}}

		_, err := dsslog.NewLoggingLocator(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Locate(`<SCRIPT>var a;</SCRIPT><script src="x.js"></script>`)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN msg=\"embedded data not found\" scripts=2")
	})

	t.Run("logs malformed payload as warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Locator{LocateFn: func(string) (*deckscout.EmbeddedData, error) {
			return nil, deckscout.Errorf(deckscout.EINVALID, "bad json")
		}}

		_, err := dsslog.NewLoggingLocator(inner, slog.New(slog.NewTextHandler(&buf, nil))).Locate("")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN msg=\"embedded data malformed\"")
		assert.Contains(t, output, "bad json")
	})
}
