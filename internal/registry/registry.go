// Package registry is the fixed catalog of games offered on the selection
// screen. The catalog is closed: entries are compiled in, so there is no
// runtime registration and no allocation on the device.
package registry

import (
	"fmt"

	"github.com/vovakirdan/dotgames/internal/core"
)

// Kind identifies a game implementation.
type Kind uint8

const (
	KindSnake Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindSnake:
		return "snake"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// GameInfo contains metadata about a catalog entry.
type GameInfo struct {
	Kind        Kind
	ID          string     // Used on the command line
	Title       string     // Human-readable name
	Description string     // One-line summary for listings
	Glyph       core.Glyph // Shown on the selection screen
}

var catalog = [...]GameInfo{
	{
		Kind:        KindSnake,
		ID:          "snake",
		Title:       "Snake",
		Description: "Steer the snake, eat the dots, avoid walls and yourself",
		Glyph:       core.GlyphSnake,
	},
}

// Count returns the number of games in the catalog. It is always at least 1.
func Count() int {
	return len(catalog)
}

// At returns the entry at index i, wrapped modulo Count so selection
// scrolling can pass any integer.
func At(i int) GameInfo {
	return catalog[Wrap(i)]
}

// Wrap normalizes a selection index into [0, Count).
func Wrap(i int) int {
	n := len(catalog)
	return ((i % n) + n) % n
}

// List returns a copy of the catalog in selection order.
func List() []GameInfo {
	out := make([]GameInfo, len(catalog))
	copy(out, catalog[:])
	return out
}

// Lookup finds a game by its ID.
// Returns an error if the ID is not in the catalog.
func Lookup(id string) (GameInfo, error) {
	for _, g := range catalog {
		if g.ID == id {
			return g, nil
		}
	}
	return GameInfo{}, fmt.Errorf("registry: unknown game %q", id)
}

// Exists checks if a game with the given ID is in the catalog.
func Exists(id string) bool {
	_, err := Lookup(id)
	return err == nil
}
