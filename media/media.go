// Package media provides the fixed image sets and the music resource shown by
// the proposal screen. Images are identified by their original URL and drawn
// in the terminal from a small piece of text art.
package media

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ErrEmptyMediaSet is returned when a set the state machine indexes into is empty
var ErrEmptyMediaSet = errors.New("media set is empty")

// Item is one displayable image
type Item struct {
	ID  string   // external image identifier
	Alt string   // caption under the art
	Art []string // terminal rendition, one string per row
}

// Width returns the widest art row in terminal cells; wide runes count twice
func (it Item) Width() int {
	w := 0
	for _, row := range it.Art {
		w = max(w, runewidth.StringWidth(row))
	}
	return w
}

// Library groups the resources of one proposal screen
type Library struct {
	Intro Item   // shown before the first decline
	Happy []Item // shown after acceptance
	Sad   []Item // cycled on every decline
	Audio string // music resource path, empty selects the built-in melody
}

// Validate checks both indexed sets are usable
func (l Library) Validate() error {
	if len(l.Happy) == 0 {
		return fmt.Errorf("happy: %w", ErrEmptyMediaSet)
	}
	if len(l.Sad) == 0 {
		return fmt.Errorf("sad: %w", ErrEmptyMediaSet)
	}
	return nil
}

// WithAudio returns a copy using the given music resource
func (l Library) WithAudio(path string) Library {
	l.Audio = path
	return l
}

// HappyAt returns the happy item at i, wrapping out-of-range indexes
func (l Library) HappyAt(i int) Item {
	return at(l.Happy, i)
}

// SadAt returns the sad item at i, wrapping out-of-range indexes
func (l Library) SadAt(i int) Item {
	return at(l.Sad, i)
}

func at(set []Item, i int) Item {
	if len(set) == 0 {
		return Item{}
	}
	i %= len(set)
	if i < 0 {
		i += len(set)
	}
	return set[i]
}
