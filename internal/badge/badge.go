package badge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/acaan/internal/deck"
	"github.com/arcanaland/acaan/internal/resolver"
)

// DefaultForceNumber is the force number before one is configured
const DefaultForceNumber = 1234

// NotAvailable is shown for a card that cannot be placed in the stack
const NotAvailable = "N/A"

// Mode selects how input is turned into the badge number
type Mode int

const (
	// AddNumber shows the distance between the input and the force number
	AddNumber Mode = iota
	// ACAAN shows the stack position of the named card
	ACAAN
)

func (m Mode) String() string {
	if m == ACAAN {
		return "acaan"
	}
	return "add-a-number"
}

// ParseMode accepts "add-a-number" or "acaan", with a few spoken variants
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add-a-number", "add a number", "add":
		return AddNumber, nil
	case "acaan", "acaan mode":
		return ACAAN, nil
	}
	return AddNumber, fmt.Errorf("invalid mode: %q (expected add-a-number or acaan)", s)
}

// Badge holds the display settings and computes what the badge shows
type Badge struct {
	Mode        Mode
	ForceNumber int
	Stack       string
	Dealing     deck.Direction

	resolver *resolver.Resolver
}

// New creates a badge in add-a-number mode on the mnemonica stack
func New(r *resolver.Resolver) *Badge {
	return &Badge{
		Mode:        AddNumber,
		ForceNumber: DefaultForceNumber,
		Stack:       "mnemonica",
		Dealing:     deck.Top,
		resolver:    r,
	}
}

// Process returns the badge text for input and whether the badge should
// change. Input that does not fit the current mode leaves the badge alone.
func (b *Badge) Process(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	if b.Mode == ACAAN {
		return b.position(input)
	}
	return b.difference(input)
}

func (b *Badge) difference(input string) (string, bool) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return "", false
	}
	diff := n - b.ForceNumber
	if diff < 0 {
		diff = -diff
	}
	return strconv.Itoa(diff), true
}

func (b *Badge) position(input string) (string, bool) {
	// nil when the stack is unknown; ordinals then never resolve
	d, _ := b.resolver.Library().Get(b.Stack)

	if !b.resolver.IsPlayingCard(input, d) {
		return "", false
	}

	pos, ok := b.resolver.FindPosition(input, b.Stack, b.Dealing)
	if !ok {
		return NotAvailable, true
	}
	return strconv.Itoa(pos), true
}
