package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/acaan/internal/badge"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text...]",
	Short: "Parse a card description into a card code",
	Long: `Parse reads a free-text card description and prints the card it names.

Ordinal descriptions such as "the third king" are counted through the
selected stack.

Examples:
  acaan parse queen of hearts
  acaan parse "the 2nd spade" --stack mnemonica`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		name, _, err := s.stackSelection(cmd)
		if err != nil {
			return err
		}

		text := strings.Join(args, " ")
		d, _ := s.resolver.Library().Get(name)

		c, ok := s.resolver.Parse(text, d)
		if !ok {
			return fmt.Errorf("not a playing card: %q", text)
		}

		fmt.Fprintln(cmd.OutOrStdout(), colorize.HiWhiteString(c.String())+" "+colorize.CyanString("(%s)", c.Name()))
		return nil
	},
}

var positionCmd = &cobra.Command{
	Use:   "position [text...]",
	Short: "Show the stack position of a card",
	Long: `Position prints where the described card lies in the selected stack.
Cards that cannot be placed print N/A, as the badge does. Use --strict to
see why a card could not be placed.

Examples:
  acaan position ace of spades
  acaan position "the third king" --dealing bottom
  acaan position 10h --stack aronson --strict`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		name, dir, err := s.stackSelection(cmd)
		if err != nil {
			return err
		}

		text := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			pos, c, err := s.resolver.Locate(text, name, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, strconv.Itoa(pos)+" "+colorize.CyanString("(%s, %s from the %s)", c.Name(), name, dir))
			return nil
		}

		pos, ok := s.resolver.FindPosition(text, name, dir)
		if !ok {
			fmt.Fprintln(out, badge.NotAvailable)
			return nil
		}
		fmt.Fprintln(out, pos)
		return nil
	},
}

var atCmd = &cobra.Command{
	Use:   "at [position]",
	Short: "Show the card at a stack position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position: %s", args[0])
		}

		s, err := loadSession()
		if err != nil {
			return err
		}

		name, dir, err := s.stackSelection(cmd)
		if err != nil {
			return err
		}

		c, err := s.resolver.CardAt(position, name, dir)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), colorize.HiWhiteString(c.String())+" "+colorize.CyanString("(%s)", c.Name()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)
	RootCmd.AddCommand(positionCmd)
	RootCmd.AddCommand(atCmd)

	parseCmd.Flags().StringP("stack", "s", "", "Stack used to count ordinals (defaults to the configured stack)")
	stackFlags(positionCmd)
	stackFlags(atCmd)
	positionCmd.Flags().Bool("strict", false, "Report why a card could not be placed")
}
