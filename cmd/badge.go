package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/acaan/internal/badge"
	"github.com/spf13/cobra"
)

var badgeCmd = &cobra.Command{
	Use:   "badge [input...]",
	Short: "Compute what the badge shows for an input",
	Long: `Badge runs input through the configured badge mode.

In add-a-number mode the badge shows the distance between the number typed
and the force number. In acaan mode it shows the stack position of the card
named, or N/A when the card cannot be placed. Input that does not fit the
mode leaves the badge unchanged and prints nothing.

Examples:
  acaan badge 1000
  acaan badge --mode acaan the seven of clubs`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		b := badge.New(s.resolver)
		b.ForceNumber = s.config.ForceNumber

		modeName := s.config.Mode
		if flag, _ := cmd.Flags().GetString("mode"); flag != "" {
			modeName = flag
		}
		if b.Mode, err = badge.ParseMode(modeName); err != nil {
			return err
		}

		if cmd.Flags().Changed("force") {
			b.ForceNumber, _ = cmd.Flags().GetInt("force")
		}

		if b.Stack, b.Dealing, err = s.stackSelection(cmd); err != nil {
			return err
		}

		input := strings.Join(args, " ")
		text, changed := b.Process(input)
		if !changed {
			logger.Info("Badge unchanged", "mode", b.Mode, "input", input)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(badgeCmd)

	badgeCmd.Flags().StringP("mode", "m", "", "Badge mode: add-a-number or acaan (defaults to config)")
	badgeCmd.Flags().IntP("force", "f", badge.DefaultForceNumber, "Force number for add-a-number mode (defaults to config)")
	stackFlags(badgeCmd)
}
