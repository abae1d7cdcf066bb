package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/acaan/internal/config"
	"github.com/arcanaland/acaan/internal/deck"
	"github.com/arcanaland/acaan/internal/resolver"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logLevel string

var logger = log.New(os.Stderr)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "acaan",
	Short: "Find where a named card sits in a memorized stack",
	Long: `acaan turns spoken or typed card descriptions ("the queen of hearts",
"third king", "10 of clubs") into positions in a memorized stack, and drives
the badge display used for the any-card-at-any-number effect.

Stacks are loaded from your stack library (XDG_DATA_HOME/acaan/stacks).
The mnemonica stack is always available.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "",
		"Log level: debug, info, warn or error (overrides config)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// session is the state every resolving command starts from
type session struct {
	config   *config.Config
	resolver *resolver.Resolver
}

func loadSession() (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %v", err)
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	setLogLevel(level)

	library, err := deck.LoadLibrary(config.GetStackLibraryPath(), logger)
	if err != nil {
		return nil, err
	}

	return &session{
		config:   cfg,
		resolver: resolver.New(library, resolver.WithLogger(logger)),
	}, nil
}

// stackFlags registers --stack and --dealing on a command
func stackFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("stack", "s", "", "Stack to use (defaults to the configured stack)")
	cmd.Flags().StringP("dealing", "d", "", "Count positions from the top or bottom (defaults to config)")
}

// stackSelection resolves --stack and --dealing against the saved settings
func (s *session) stackSelection(cmd *cobra.Command) (string, deck.Direction, error) {
	name := s.config.DefaultStack
	if flag, _ := cmd.Flags().GetString("stack"); flag != "" {
		name = flag
	}

	dealing := s.config.Dealing
	if flag, _ := cmd.Flags().GetString("dealing"); flag != "" {
		dealing = flag
	}

	dir, err := deck.ParseDirection(dealing)
	if err != nil {
		return "", deck.Top, err
	}

	return name, dir, nil
}
