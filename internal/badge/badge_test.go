package badge

import (
	"testing"

	"github.com/arcanaland/acaan/internal/card"
	"github.com/arcanaland/acaan/internal/deck"
	"github.com/arcanaland/acaan/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"acaan", ACAAN, false},
		{"ACAAN mode", ACAAN, false},
		{"add-a-number", AddNumber, false},
		{"add a number", AddNumber, false},
		{"subtract", AddNumber, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddNumber(t *testing.T) {
	t.Parallel()
	b := New(resolver.New(nil))

	tests := []struct {
		input   string
		want    string
		changed bool
	}{
		{"1000", "234", true},
		{"2000", "766", true},
		{" 1234 ", "0", true},
		{"-6", "1240", true},
		{"", "", false},
		{"twelve", "", false},
		{"12ab", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, changed := b.Process(tt.input)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestACAAN(t *testing.T) {
	t.Parallel()
	short := &deck.Deck{Name: "short", Cards: []card.Card{"as"}}
	b := New(resolver.New(deck.NewLibrary(deck.Mnemonica(), short)))
	b.Mode = ACAAN

	tests := []struct {
		name    string
		stack   string
		dealing deck.Direction
		input   string
		want    string
		changed bool
	}{
		{"top", "mnemonica", deck.Top, "queen of hearts", "25", true},
		{"bottom", "mnemonica", deck.Bottom, "queen of hearts", "28", true},
		{"ordinal", "mnemonica", deck.Top, "the fourth ace", "40", true},
		{"not a card", "mnemonica", deck.Top, "1234", "", false},
		{"card missing from stack", "short", deck.Top, "king of clubs", NotAvailable, true},
		{"unknown stack", "aronson", deck.Top, "king of clubs", NotAvailable, true},
		{"ordinal on unknown stack", "aronson", deck.Top, "the fourth ace", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := *b
			b.Stack = tt.stack
			b.Dealing = tt.dealing

			got, changed := b.Process(tt.input)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, got)
		})
	}
}
