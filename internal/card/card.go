package card

import (
	"fmt"
	"strings"
)

// Card is a canonical playing card code: rank followed by suit (e.g. "as", "10h")
type Card string

// Ranks in deck order
var Ranks = []string{"a", "2", "3", "4", "5", "6", "7", "8", "9", "10", "j", "q", "k"}

// Suits in the order used by new-deck stacks
var Suits = []string{"s", "h", "d", "c"}

var rankNames = map[string]string{
	"a": "ace", "2": "two", "3": "three", "4": "four", "5": "five",
	"6": "six", "7": "seven", "8": "eight", "9": "nine", "10": "ten",
	"j": "jack", "q": "queen", "k": "king",
}

var suitNames = map[string]string{
	"s": "spades", "h": "hearts", "d": "diamonds", "c": "clubs",
}

// New builds a card from a rank and suit code
func New(rank, suit string) Card {
	return Card(rank + suit)
}

// Parse validates a canonical code such as "qd" or "10C"
func Parse(code string) (Card, error) {
	c := Card(strings.ToLower(strings.TrimSpace(code)))
	if !c.Valid() {
		return "", fmt.Errorf("invalid card code: %q", code)
	}
	return c, nil
}

// Rank returns the rank part of the code
func (c Card) Rank() string {
	if len(c) < 2 {
		return ""
	}
	return string(c[:len(c)-1])
}

// Suit returns the suit part of the code
func (c Card) Suit() string {
	if len(c) < 2 {
		return ""
	}
	return string(c[len(c)-1:])
}

// Valid reports whether the code names one of the 52 cards
func (c Card) Valid() bool {
	_, rankOK := rankNames[c.Rank()]
	_, suitOK := suitNames[c.Suit()]
	return rankOK && suitOK
}

// Phrase returns the lower-case "rank of suit" form, e.g. "ace of spades"
func (c Card) Phrase() string {
	if !c.Valid() {
		return string(c)
	}
	return rankNames[c.Rank()] + " of " + suitNames[c.Suit()]
}

// Name returns the display name, e.g. "Ace of Spades"
func (c Card) Name() string {
	if !c.Valid() {
		return string(c)
	}
	rank := rankNames[c.Rank()]
	suit := suitNames[c.Suit()]
	return strings.ToUpper(rank[:1]) + rank[1:] + " of " + strings.ToUpper(suit[:1]) + suit[1:]
}

func (c Card) String() string {
	return string(c)
}

// All returns the 52 cards in new-deck order (spades, hearts, diamonds, clubs; ace to king)
func All() []Card {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, New(rank, suit))
		}
	}
	return cards
}
