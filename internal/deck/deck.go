package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/acaan/internal/card"
	"gopkg.in/yaml.v3"
)

// Size is the number of cards in a full stack
const Size = 52

// ErrNotFound is returned when a named stack is not in the library
var ErrNotFound = errors.New("stack not found")

// Direction is the end of the physical deck that position 1 is counted from
type Direction int

const (
	Top Direction = iota
	Bottom
)

// ParseDirection parses "top" or "bottom"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Top, fmt.Errorf("invalid dealing direction: %q (expected top or bottom)", s)
}

func (d Direction) String() string {
	if d == Bottom {
		return "bottom"
	}
	return "top"
}

// Deck is a named, ordered stack of canonical cards
type Deck struct {
	Name        string
	Description string
	Author      string
	Path        string // empty for built-in stacks

	Cards []card.Card
}

// Len returns the number of cards in the stack
func (d *Deck) Len() int {
	return len(d.Cards)
}

// IndexOf returns the zero-based index of c, or -1
func (d *Deck) IndexOf(c card.Card) int {
	for i, stacked := range d.Cards {
		if stacked == c {
			return i
		}
	}
	return -1
}

// Position converts the card's index to a dealing position.
// From the top, position = index+1. From the bottom, position = len-index,
// so the last card of the stack is 1 and the first card is len.
func (d *Deck) Position(c card.Card, dir Direction) (int, bool) {
	i := d.IndexOf(c)
	if i < 0 {
		return 0, false
	}
	if dir == Bottom {
		return d.Len() - i, true
	}
	return i + 1, true
}

// CardAt is the inverse of Position
func (d *Deck) CardAt(position int, dir Direction) (card.Card, bool) {
	if position < 1 || position > d.Len() {
		return "", false
	}
	if dir == Bottom {
		return d.Cards[d.Len()-position], true
	}
	return d.Cards[position-1], true
}

// Verify checks that the stack holds each of the 52 cards exactly once
func (d *Deck) Verify() error {
	if d.Len() != Size {
		return fmt.Errorf("stack %s has %d cards, expected %d", d.Name, d.Len(), Size)
	}
	seen := make(map[card.Card]bool, Size)
	for _, c := range d.Cards {
		if !c.Valid() {
			return fmt.Errorf("stack %s has invalid card %q", d.Name, c)
		}
		if seen[c] {
			return fmt.Errorf("stack %s has duplicate card %s", d.Name, c)
		}
		seen[c] = true
	}
	return nil
}

// Mnemonica returns the built-in default stack
func Mnemonica() *Deck {
	return &Deck{
		Name:        "mnemonica",
		Description: "Built-in stack",
		Cards:       card.All(),
	}
}

// LoadDeck loads a stack from a .toml, .yaml or .yml file
func LoadDeck(path string) (*Deck, error) {
	config, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	name := config.Stack.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	d := &Deck{
		Name:        name,
		Description: config.Stack.Description,
		Author:      config.Stack.Author,
		Path:        path,
		Cards:       make([]card.Card, 0, len(config.Stack.Cards)),
	}

	for _, code := range config.Stack.Cards {
		c, err := card.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("error loading stack %s: %v", name, err)
		}
		d.Cards = append(d.Cards, c)
	}

	if err := d.Verify(); err != nil {
		return nil, err
	}

	return d, nil
}

// DecodeFile decodes a stack file, choosing the format by extension
func DecodeFile(path string) (*StackConfig, error) {
	var config StackConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return nil, fmt.Errorf("error parsing %s: %v", filepath.Base(path), err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %v", filepath.Base(path), err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing %s: %v", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported stack file: %s", filepath.Base(path))
	}

	return &config, nil
}

// IsStackFile reports whether the file name has a supported extension
func IsStackFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// Stack file structures
type StackConfig struct {
	Stack StackSection `toml:"stack" yaml:"stack"`
}

type StackSection struct {
	Name        string   `toml:"name" yaml:"name"`
	Description string   `toml:"description" yaml:"description"`
	Author      string   `toml:"author" yaml:"author"`
	Cards       []string `toml:"cards" yaml:"cards"`
}
