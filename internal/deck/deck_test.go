package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/acaan/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reversed() []card.Card {
	all := card.All()
	out := make([]card.Card, len(all))
	for i, c := range all {
		out[len(all)-1-i] = c
	}
	return out
}

func quoted(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprintf("%q", c)
	}
	return strings.Join(parts, ", ")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseDirection(t *testing.T) {
	t.Parallel()
	dir, err := ParseDirection("Bottom")
	require.NoError(t, err)
	assert.Equal(t, Bottom, dir)
	assert.Equal(t, "bottom", dir.String())

	dir, err = ParseDirection(" top ")
	require.NoError(t, err)
	assert.Equal(t, Top, dir)

	_, err = ParseDirection("middle")
	assert.Error(t, err)
}

func TestPositionTop(t *testing.T) {
	t.Parallel()
	d := Mnemonica()
	for i, c := range d.Cards {
		pos, ok := d.Position(c, Top)
		require.True(t, ok)
		assert.Equal(t, i+1, pos, "card %s", c)
	}

	pos, _ := d.Position("as", Top)
	assert.Equal(t, 1, pos)
	pos, _ = d.Position("kc", Top)
	assert.Equal(t, 52, pos)
}

func TestPositionBottom(t *testing.T) {
	t.Parallel()
	d := Mnemonica()
	for i, c := range d.Cards {
		pos, ok := d.Position(c, Bottom)
		require.True(t, ok)
		assert.Equal(t, 52-i, pos, "card %s", c)
	}

	pos, _ := d.Position("as", Bottom)
	assert.Equal(t, 52, pos)
	pos, _ = d.Position("kc", Bottom)
	assert.Equal(t, 1, pos)
}

func TestPositionMissingCard(t *testing.T) {
	t.Parallel()
	d := &Deck{Name: "short", Cards: []card.Card{"as", "2s"}}
	_, ok := d.Position("kc", Top)
	assert.False(t, ok)
	assert.Equal(t, -1, d.IndexOf("kc"))
}

func TestCardAtInvertsPosition(t *testing.T) {
	t.Parallel()
	d := Mnemonica()
	for _, dir := range []Direction{Top, Bottom} {
		for _, c := range d.Cards {
			pos, ok := d.Position(c, dir)
			require.True(t, ok)
			got, ok := d.CardAt(pos, dir)
			require.True(t, ok)
			assert.Equal(t, c, got, "%s from %s", c, dir)
		}
	}

	_, ok := d.CardAt(0, Top)
	assert.False(t, ok)
	_, ok = d.CardAt(53, Bottom)
	assert.False(t, ok)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	require.NoError(t, Mnemonica().Verify())

	short := &Deck{Name: "short", Cards: card.All()[:51]}
	assert.ErrorContains(t, short.Verify(), "51 cards")

	dup := &Deck{Name: "dup", Cards: append(card.All()[:51:51], "as")}
	assert.ErrorContains(t, dup.Verify(), "duplicate card as")
}

func TestLoadDeckTOML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "reverse.toml", fmt.Sprintf(`[stack]
name = "reverse"
description = "Mnemonica upside down"
author = "test"
cards = [%s]
`, quoted(reversed())))

	d, err := LoadDeck(path)
	require.NoError(t, err)
	assert.Equal(t, "reverse", d.Name)
	assert.Equal(t, "test", d.Author)
	assert.Equal(t, path, d.Path)
	assert.Equal(t, card.Card("kc"), d.Cards[0])
}

func TestLoadDeckYAML(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	b.WriteString("stack:\n  description: yaml stack\n  cards:\n")
	for _, c := range reversed() {
		fmt.Fprintf(&b, "    - %s\n", strings.ToUpper(string(c)))
	}
	path := writeFile(t, t.TempDir(), "upside.yaml", b.String())

	d, err := LoadDeck(path)
	require.NoError(t, err)
	assert.Equal(t, "upside", d.Name, "name falls back to file name")
	assert.Equal(t, card.Card("kc"), d.Cards[0])
	assert.Equal(t, card.Card("as"), d.Cards[51])
}

func TestLoadDeckErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	bad := writeFile(t, dir, "bad.toml", `[stack]
name = "bad"
cards = ["as", "zz"]
`)
	_, err := LoadDeck(bad)
	assert.ErrorContains(t, err, "invalid card code")

	short := writeFile(t, dir, "short.toml", `[stack]
name = "short"
cards = ["as", "2s"]
`)
	_, err = LoadDeck(short)
	assert.ErrorContains(t, err, "2 cards")

	_, err = LoadDeck(writeFile(t, dir, "stack.json", "{}"))
	assert.ErrorContains(t, err, "unsupported stack file")
}

func TestLoadLibrary(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "reverse.toml", fmt.Sprintf("[stack]\nname = \"reverse\"\ncards = [%s]\n", quoted(reversed())))
	writeFile(t, dir, "clash.toml", fmt.Sprintf("[stack]\nname = \"mnemonica\"\ncards = [%s]\n", quoted(reversed())))
	writeFile(t, dir, "broken.toml", "[stack\n")
	writeFile(t, dir, "notes.txt", "ignored")

	lib, err := LoadLibrary(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"mnemonica", "reverse"}, lib.Names())

	m, ok := lib.Get("mnemonica")
	require.True(t, ok)
	assert.Equal(t, card.Card("as"), m.Cards[0], "built-in wins name clashes")

	_, err = lib.Lookup("aronson")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadLibraryMissingDir(t *testing.T) {
	t.Parallel()
	lib, err := LoadLibrary(filepath.Join(t.TempDir(), "missing"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"mnemonica"}, lib.Names())
}
