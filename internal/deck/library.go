package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

// Library holds the named stacks available to the resolver. It is built once
// and never modified, so it may be shared between goroutines.
type Library struct {
	decks map[string]*Deck
	names []string
}

// NewLibrary builds a library from the given stacks. Earlier stacks win
// on name clashes.
func NewLibrary(decks ...*Deck) *Library {
	l := &Library{decks: make(map[string]*Deck, len(decks))}
	for _, d := range decks {
		if _, ok := l.decks[d.Name]; ok {
			continue
		}
		l.decks[d.Name] = d
		l.names = append(l.names, d.Name)
	}
	return l
}

// LoadLibrary returns the built-in stack plus every valid stack file in dir.
// A missing directory is not an error.
func LoadLibrary(dir string, logger *log.Logger) (*Library, error) {
	decks := []*Deck{Mnemonica()}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return NewLibrary(decks...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading stack library: %v", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() || !IsStackFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		d, err := LoadDeck(path)
		if err != nil {
			if logger != nil {
				logger.Warn("Skipping stack file", "path", path, "error", err)
			}
			continue
		}
		if logger != nil {
			logger.Debug("Loaded stack", "name", d.Name, "path", path)
		}
		decks = append(decks, d)
	}

	return NewLibrary(decks...), nil
}

// Get looks up a stack by name
func (l *Library) Get(name string) (*Deck, bool) {
	d, ok := l.decks[name]
	return d, ok
}

// Lookup is Get with an error for callers that report it
func (l *Library) Lookup(name string) (*Deck, error) {
	d, ok := l.decks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return d, nil
}

// Names returns the stack names in load order
func (l *Library) Names() []string {
	return append([]string(nil), l.names...)
}
