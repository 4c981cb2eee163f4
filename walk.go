package deckscout

import (
	"iter"
	"strconv"
	"strings"
)

// RootPath is the structural path of the top-level JSON value.
const RootPath = "root"

// Fields checked, in priority order, for a deck link and a label on
// object-shaped array elements.
var (
	hrefKeys  = []string{"href", "url", "link", "path"}
	labelKeys = []string{"label", "name", "title", "legend", "deckName", "cardName"}
)

// listKeys are key names (lowercased) that usually hold deck lists.
// They only drive diagnostics; traversal never filters on them.
var listKeys = map[string]bool{
	"decks":     true,
	"decklist":  true,
	"decklists": true,
	"items":     true,
	"results":   true,
}

// Walker traverses an arbitrary decoded JSON value looking for link-bearing
// records, independent of key names or nesting depth.
type Walker struct {
	// OnList, if set, is called when a recognized list key holds an array.
	OnList func(path string, entries int)
}

// Walk returns the candidates found under v in traversal order. Each
// object-shaped array element is checked for a deck link before the walk
// descends into it, so a record and records nested inside it are all found.
// Duplicates are yielded as often as they occur.
func (w *Walker) Walk(v Value, path string) iter.Seq[DeckCandidate] {
	return func(yield func(DeckCandidate) bool) {
		w.walk(v, path, yield)
	}
}

func (w *Walker) walk(v Value, path string, yield func(DeckCandidate) bool) bool {
	switch v := v.(type) {
	case Object:
		for _, m := range v {
			next := path + "." + m.Key
			if arr, ok := m.Value.(Array); ok && w.OnList != nil && listKeys[strings.ToLower(m.Key)] {
				w.OnList(next, len(arr))
			}
			if !w.walk(m.Value, next, yield) {
				return false
			}
		}
	case Array:
		for i, elem := range v {
			next := path + "[" + strconv.Itoa(i) + "]"
			if obj, ok := elem.(Object); ok {
				if c, ok := CandidateFromObject(obj, next); ok {
					if !yield(c) {
						return false
					}
				}
			}
			if !w.walk(elem, next, yield) {
				return false
			}
		}
	case String, Number, Bool, Null, nil:
	}
	return true
}

// CandidateFromObject builds a candidate from a record carrying a deck link
// in one of its conventional link fields. The first string-valued label
// field supplies the label; a blank one means no label.
func CandidateFromObject(obj Object, source string) (DeckCandidate, bool) {
	href, ok := firstString(obj, hrefKeys, ContainsDeckPath)
	if !ok {
		return DeckCandidate{}, false
	}
	label, _ := firstString(obj, labelKeys, nil)
	if strings.TrimSpace(label) == "" {
		label = ""
	}
	return DeckCandidate{Href: href, Label: label, Source: source}, true
}

func firstString(obj Object, keys []string, accept func(string) bool) (string, bool) {
	for _, key := range keys {
		v, ok := obj.Get(key)
		if !ok {
			continue
		}
		s, ok := v.(String)
		if !ok {
			continue
		}
		if accept == nil || accept(string(s)) {
			return string(s), true
		}
	}
	return "", false
}
