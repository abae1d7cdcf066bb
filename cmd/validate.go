package cmd

import (
	"fmt"

	"github.com/arcanaland/acaan/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a stack file",
	Long: `Validate checks that a .toml or .yaml stack file names a stack and lists
each of the 52 cards exactly once, as canonical codes such as "as" or "10h".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stackPath := args[0]
		out := cmd.OutOrStdout()

		v := validator.NewValidator(stackPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Stack '%s' is valid.\n", stackPath)
		} else {
			fmt.Fprintf(out, "❌ Stack '%s' has %d validation errors:\n", stackPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
