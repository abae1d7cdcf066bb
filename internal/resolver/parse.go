package resolver

import (
	"regexp"
	"strings"

	"github.com/arcanaland/acaan/internal/card"
	"github.com/arcanaland/acaan/internal/deck"
)

// verdict is the outcome of one parse stage
type verdict int

const (
	next   verdict = iota // stage did not apply, try the next one
	found                 // stage produced a card
	missed                // stage applied but no card exists; stop
)

type stage struct {
	name string
	run  func(text string, d *deck.Deck) (card.Card, verdict)
}

// Stages run in this order and the first decisive one wins. Order matters
// more than where a match sits in the text.
var stages = []stage{
	{"code", codeStage},
	{"rank-of-suit", phraseStage},
	{"ordinal", ordinalStage},
	{"components", componentStage},
}

var phrasePattern = regexp.MustCompile(
	`(?i)(ace|two|three|four|five|six|seven|eight|nine|ten|jack|queen|king)\s+of\s+(spades?|hearts?|diamonds?|clubs?)`)

type wordPattern struct {
	code    string
	pattern *regexp.Regexp
}

var (
	rankPatterns = compileWords(card.RankWords)
	suitPatterns = compileWords(card.SuitWords)
)

// compileWords builds whole-word matchers for every multi-character key.
// Single letters are left out; they match too much ordinary text.
func compileWords(words []card.Word) []wordPattern {
	var patterns []wordPattern
	for _, w := range words {
		if len(w.Key) == 1 {
			continue
		}
		patterns = append(patterns, wordPattern{
			code:    w.Code,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w.Key) + `\b`),
		})
	}
	return patterns
}

func scanWords(text string, patterns []wordPattern) string {
	for _, p := range patterns {
		if p.pattern.MatchString(text) {
			return p.code
		}
	}
	return ""
}

// components is a partial card; either field may be empty
type components struct {
	rank string
	suit string
}

func parseComponents(text string) components {
	if strings.Contains(text, " of ") {
		parts := strings.Split(text, " of ")
		if len(parts) != 2 {
			return components{}
		}
		rank, _ := card.LookupRank(strings.TrimSpace(parts[0]))
		suit, _ := card.LookupSuit(strings.TrimSpace(parts[1]))
		return components{rank: rank, suit: suit}
	}

	return components{
		rank: scanWords(text, rankPatterns),
		suit: scanWords(text, suitPatterns),
	}
}

// codeStage accepts input that is already a canonical code ("as", "10h")
func codeStage(text string, _ *deck.Deck) (card.Card, verdict) {
	c, err := card.Parse(text)
	if err != nil {
		return "", next
	}
	return c, found
}

func phraseStage(text string, _ *deck.Deck) (card.Card, verdict) {
	m := phrasePattern.FindStringSubmatch(text)
	if m == nil {
		return "", next
	}
	rank, rankOK := card.LookupRank(strings.ToLower(m[1]))
	suit, suitOK := card.LookupSuit(strings.ToLower(m[2]))
	if !rankOK || !suitOK {
		return "", next
	}
	return card.New(rank, suit), found
}

// ordinalStage handles "third king", "2nd spade" and the like. Only the first
// ordinal in table order is considered.
func ordinalStage(text string, d *deck.Deck) (card.Card, verdict) {
	for _, o := range card.OrdinalWords {
		i := strings.Index(text, o.Key)
		if i < 0 {
			continue
		}

		c := parseComponents(strings.TrimSpace(text[i+len(o.Key):]))
		switch {
		case c.rank != "" && c.suit != "":
			want := card.New(c.rank, c.suit)
			return nth(d, o.Value, func(stacked card.Card) bool { return stacked == want })
		case c.rank != "":
			return nth(d, o.Value, func(stacked card.Card) bool { return stacked.Rank() == c.rank })
		case c.suit != "":
			return nth(d, o.Value, func(stacked card.Card) bool { return stacked.Suit() == c.suit })
		}
		return "", next
	}
	return "", next
}

func componentStage(text string, _ *deck.Deck) (card.Card, verdict) {
	c := parseComponents(text)
	if c.rank == "" || c.suit == "" {
		return "", missed
	}
	return card.New(c.rank, c.suit), found
}

// nth returns the nth card of d, in stack order, that satisfies match
func nth(d *deck.Deck, n int, match func(card.Card) bool) (card.Card, verdict) {
	if d == nil {
		return "", missed
	}
	count := 0
	for _, c := range d.Cards {
		if match(c) {
			count++
			if count == n {
				return c, found
			}
		}
	}
	return "", missed
}
