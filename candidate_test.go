package deckscout_test

import (
	"testing"

	"github.com/fwojciec/deckscout"
	"github.com/stretchr/testify/assert"
)

func TestIsDeckHref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href string
		want bool
	}{
		{"/decks/view/0a1b2c3d-4e5f-6789-abcd-ef0123456789", true},
		{"/decks/view/DEADBEEF", true},
		{"/DECKS/VIEW/abc", true},
		{"/decks/view/", false},
		{"/decks/view/xyz", false},
		{"/decks/abc", false},
		{"https://piltoverarchive.com/decks/view/abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, deckscout.IsDeckHref(tt.href))
		})
	}
}

func TestContainsDeckPath(t *testing.T) {
	t.Parallel()

	assert.True(t, deckscout.ContainsDeckPath("https://piltoverarchive.com/decks/view/abc"))
	assert.True(t, deckscout.ContainsDeckPath("/decks/view/not-hex"))
	assert.False(t, deckscout.ContainsDeckPath("/decks/abc"))
}

func TestCleanLabel(t *testing.T) {
	t.Parallel()

	t.Run("strips nested tags and collapses whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Noxus Aggro", deckscout.CleanLabel("  <b>Noxus</b>\n  Aggro "))
	})

	t.Run("keeps words separated by tags apart", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Jinx Viktor", deckscout.CleanLabel(`<span>Jinx</span><span>Viktor</span>`))
	})

	t.Run("returns empty for whitespace and markup only", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, deckscout.CleanLabel(" \n\t<img src=\"x.png\"> "))
	})

	t.Run("returns empty for empty fragment", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, deckscout.CleanLabel(""))
	})
}

func TestDeckCandidate_HasLabel(t *testing.T) {
	t.Parallel()

	assert.True(t, deckscout.DeckCandidate{Href: "/decks/view/a", Label: "Ionia"}.HasLabel())
	assert.False(t, deckscout.DeckCandidate{Href: "/decks/view/a"}.HasLabel())
}

func TestQuery_WithDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, deckscout.Query{Format: "standard", Region: "americas"}, deckscout.Query{}.WithDefaults())
	assert.Equal(t, deckscout.Query{Format: "eternal", Region: "europe"}, deckscout.Query{Format: "eternal", Region: "europe"}.WithDefaults())
}
