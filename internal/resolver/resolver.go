// Package resolver turns free-text card descriptions into canonical cards
// and finds their positions in a memorized stack.
//
// A Resolver has no mutable state. The same inputs always give the same
// answer, and one Resolver can serve any number of goroutines.
package resolver

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/acaan/internal/card"
	"github.com/arcanaland/acaan/internal/deck"
	"github.com/charmbracelet/log"
)

var (
	ErrDeckNotFound  = errors.New("stack not found")
	ErrNotACard      = errors.New("not a playing card")
	ErrCardNotInDeck = errors.New("card not in stack")
)

// Resolver parses card text and resolves stack positions
type Resolver struct {
	library *deck.Library
	logger  *log.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger traces parse stages at debug level
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver over library. A nil library holds only the
// built-in mnemonica stack.
func New(library *deck.Library, opts ...Option) *Resolver {
	if library == nil {
		library = deck.NewLibrary(deck.Mnemonica())
	}
	r := &Resolver{
		library: library,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Library returns the stacks the resolver looks positions up in
func (r *Resolver) Library() *deck.Library {
	return r.library
}

// Parse converts text to a card. Ordinal descriptions such as "third king"
// are resolved against d; with a nil d they never match.
func (r *Resolver) Parse(text string, d *deck.Deck) (card.Card, bool) {
	clean := strings.ToLower(strings.TrimSpace(text))

	for _, s := range stages {
		c, v := s.run(clean, d)
		switch v {
		case found:
			r.logger.Debug("Parsed card", "input", text, "stage", s.name, "card", c)
			return c, true
		case missed:
			r.logger.Debug("No card found", "input", text, "stage", s.name)
			return "", false
		}
	}

	return "", false
}

// IsPlayingCard reports whether Parse finds a card in text
func (r *Resolver) IsPlayingCard(text string, d *deck.Deck) bool {
	_, ok := r.Parse(text, d)
	return ok
}

// FindPosition returns the dealing position of the card described by text
// in the named stack. Every failure reports false.
func (r *Resolver) FindPosition(text, deckName string, dir deck.Direction) (int, bool) {
	pos, _, err := r.Locate(text, deckName, dir)
	if err != nil {
		return 0, false
	}
	return pos, true
}

// Locate is FindPosition with the failure kind kept. It also returns the
// card that was resolved.
func (r *Resolver) Locate(text, deckName string, dir deck.Direction) (int, card.Card, error) {
	d, ok := r.library.Get(deckName)
	if !ok {
		return 0, "", fmt.Errorf("%w: %s", ErrDeckNotFound, deckName)
	}

	c, ok := r.Parse(text, d)
	if !ok {
		return 0, "", fmt.Errorf("%w: %q", ErrNotACard, text)
	}

	pos, ok := d.Position(c, dir)
	if !ok {
		return 0, c, fmt.Errorf("%w: %s in %s", ErrCardNotInDeck, c, d.Name)
	}

	r.logger.Debug("Resolved position", "card", c, "stack", d.Name, "dealing", dir, "position", pos)
	return pos, c, nil
}

// CardAt returns the card at a dealing position in the named stack
func (r *Resolver) CardAt(position int, deckName string, dir deck.Direction) (card.Card, error) {
	d, ok := r.library.Get(deckName)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDeckNotFound, deckName)
	}
	c, ok := d.CardAt(position, dir)
	if !ok {
		return "", fmt.Errorf("position %d out of range 1-%d", position, d.Len())
	}
	return c, nil
}
