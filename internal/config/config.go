package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/acaan/internal/badge"
	"github.com/arcanaland/acaan/internal/deck"
)

// ErrInvalidValue is returned by Set for values a key does not accept
var ErrInvalidValue = errors.New("invalid value")

// Config represents the persisted badge settings
type Config struct {
	DefaultStack string `toml:"default_stack"`
	Dealing      string `toml:"dealing"`
	Mode         string `toml:"mode"`
	ForceNumber  int    `toml:"force_number"`
	LogLevel     string `toml:"log_level"`
}

// Keys lists the settable keys in display order
var Keys = []string{"default_stack", "dealing", "mode", "force_number", "log_level"}

// Default returns the settings used before anything is saved
func Default() *Config {
	return &Config{
		DefaultStack: "mnemonica",
		Dealing:      deck.Top.String(),
		Mode:         badge.AddNumber.String(),
		ForceNumber:  badge.DefaultForceNumber,
		LogLevel:     "info",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetStackLibraryPath returns the directory user stacks are loaded from
func GetStackLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "acaan", "stacks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "acaan", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := Save(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	// Missing keys keep their defaults
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

// Save writes the config file
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// Direction returns the parsed dealing direction
func (c *Config) Direction() (deck.Direction, error) {
	return deck.ParseDirection(c.Dealing)
}

// BadgeMode returns the parsed badge mode
func (c *Config) BadgeMode() (badge.Mode, error) {
	return badge.ParseMode(c.Mode)
}

// Get returns the value of a key as text
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "default_stack":
		return c.DefaultStack, nil
	case "dealing":
		return c.Dealing, nil
	case "mode":
		return c.Mode, nil
	case "force_number":
		return strconv.Itoa(c.ForceNumber), nil
	case "log_level":
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

// Set validates and assigns a key. Stack names are not checked here since
// the library may change after the setting is saved.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "default_stack":
		if value == "" {
			return fmt.Errorf("%w: stack name is empty", ErrInvalidValue)
		}
		c.DefaultStack = value
	case "dealing":
		dir, err := deck.ParseDirection(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		c.Dealing = dir.String()
	case "mode":
		mode, err := badge.ParseMode(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		c.Mode = mode.String()
	case "force_number":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: force number must be an integer", ErrInvalidValue)
		}
		c.ForceNumber = n
	case "log_level":
		switch value {
		case "debug", "info", "warn", "error":
			c.LogLevel = value
		default:
			return fmt.Errorf("%w: log level must be debug, info, warn or error", ErrInvalidValue)
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return nil
}

// SetValue loads the config, sets one key and saves it
func SetValue(key, value string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := config.Set(key, value); err != nil {
		return err
	}
	return Save(config)
}

// GetDefaultStack returns the default stack name from config
func GetDefaultStack() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultStack, nil
}

// SetDefaultStack sets the default stack in the config
func SetDefaultStack(name string) error {
	return SetValue("default_stack", name)
}
