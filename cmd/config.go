package cmd

import (
	"fmt"

	"github.com/arcanaland/acaan/internal/config"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, key := range config.Keys {
			value, _ := cfg.Get(key)
			fmt.Fprintf(out, "%s %s\n", colorize.CyanString("%-14s", key), value)
		}
		fmt.Fprintf(out, "\n%s %s\n", colorize.CyanString("%-14s", "file"), config.GetConfigFilePath())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a saved setting",
	Long: `Set changes one saved setting.

Keys:
  default_stack  stack used when --stack is not given
  dealing        top or bottom
  mode           add-a-number or acaan
  force_number   number the add-a-number mode counts from
  log_level      debug, info, warn or error`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetValue(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
