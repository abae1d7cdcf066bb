package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/acaan/internal/config"
	"github.com/spf13/cobra"
)

// stackCmd represents the stack command group
var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Manage memorized stacks in your stack library",
	Long:  `Commands for managing the memorized stacks in your stack library.`,
}

// stackListCmd represents the stack ls command
var stackListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available stacks",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		library := s.resolver.Library()

		for _, name := range library.Names() {
			d, _ := library.Get(name)

			source := "built-in"
			if d.Path != "" {
				source = d.Path
			}

			if name == s.config.DefaultStack {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", name, source)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", name, source)
			}
		}

		if _, ok := library.Get(s.config.DefaultStack); !ok {
			logger.Warn("Default stack is not in the library", "stack", s.config.DefaultStack)
		}

		return nil
	},
}

// stackSetDefaultCmd represents the stack set-default command
var stackSetDefaultCmd = &cobra.Command{
	Use:   "set-default [stack_name]",
	Short: "Set the default stack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		s, err := loadSession()
		if err != nil {
			return err
		}

		// Only stacks that loaded cleanly can be the default
		if _, err := s.resolver.Library().Lookup(name); err != nil {
			return err
		}

		if err := config.SetDefaultStack(name); err != nil {
			return fmt.Errorf("error setting default stack: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default stack set to: %s\n", name)
		return nil
	},
}

// stackInitCmd represents the stack init command
var stackInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the stack library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetStackLibraryPath()
		out := cmd.OutOrStdout()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating stack library: %v", err)
		}

		fmt.Fprintln(out, "Stack library initialized at:", libraryPath)
		fmt.Fprintln(out, "Add stacks by copying .toml or .yaml stack files to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(stackCmd)
	stackCmd.AddCommand(stackListCmd)
	stackCmd.AddCommand(stackSetDefaultCmd)
	stackCmd.AddCommand(stackInitCmd)
}
