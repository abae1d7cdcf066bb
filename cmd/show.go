package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/arcanaland/acaan/internal/card"
	"github.com/arcanaland/acaan/internal/deck"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [stack_name]",
	Short: "Display a stack with the position of every card",
	Long: `Show lays out a stack in columns, numbered from the top or the bottom.
Without a name the default stack is shown.

Examples:
  acaan stack show
  acaan stack show mnemonica --dealing bottom`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		name, dir, err := s.stackSelection(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			name = args[0]
		}

		d, err := s.resolver.Library().Lookup(name)
		if err != nil {
			return err
		}

		displayStack(cmd.OutOrStdout(), d, dir, terminalWidth())
		return nil
	},
}

func init() {
	stackCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("dealing", "d", "", "Number from the top or bottom (defaults to config)")
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// getSuitSymbol returns a symbol for the suit
func getSuitSymbol(suit string) string {
	switch suit {
	case "s":
		return "♠"
	case "h":
		return "♥"
	case "d":
		return "♦"
	case "c":
		return "♣"
	default:
		return "•"
	}
}

// formatCard renders a card as rank and suit symbol, red for red suits
func formatCard(c card.Card) string {
	text := fmt.Sprintf("%-2s%s", strings.ToUpper(c.Rank()), getSuitSymbol(c.Suit()))
	if c.Suit() == "h" || c.Suit() == "d" {
		return colorize.RedString(text)
	}
	return colorize.HiWhiteString(text)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// displayStack prints the stack header followed by the cards in columns,
// filled top to bottom in position order
func displayStack(w io.Writer, d *deck.Deck, dir deck.Direction, width int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("Stack:   ")+colorize.HiWhiteString(d.Name))
	if d.Author != "" {
		fmt.Fprintln(w, colorize.CyanString("Author:  ")+colorize.HiWhiteString(d.Author))
	}
	fmt.Fprintln(w, colorize.CyanString("Dealing: ")+colorize.HiWhiteString("from the %s", dir))
	if d.Description != "" {
		for _, line := range wrapText(d.Description, width-2) {
			fmt.Fprintln(w, "  "+line)
		}
	}
	fmt.Fprintln(w)

	// "52 10♠" plus spacing
	const cellWidth = 9
	columns := max(1, (width-2)/cellWidth)
	rows := (d.Len() + columns - 1) / columns

	for row := 0; row < rows; row++ {
		fmt.Fprint(w, "  ")
		for col := 0; col < columns; col++ {
			position := col*rows + row + 1
			c, ok := d.CardAt(position, dir)
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s %s  ", colorize.CyanString("%2d", position), formatCard(c))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}
