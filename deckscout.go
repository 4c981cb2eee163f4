// Package deckscout recovers deck links from a deck listing page.
// The listing may render its decks as static markup or only inside an
// embedded client-side JSON payload; extraction tries the markup first and
// falls back to walking the payload.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, regexp/, slog/).
package deckscout
