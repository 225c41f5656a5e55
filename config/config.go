// Package config loads the small TOML file that configures the
// crabculator CLI: where the persisted buffer lives, how much readline
// history to keep, and the log level. Its absence is not an error —
// Load always returns a usable Config.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the parsed contents of ~/.crabculator/config.toml.
type Config struct {
	// StatePath overrides the fixed ~/.crabculator/state.txt location from
	// spec.md §6. Empty means use the default.
	StatePath string `toml:"state_path"`

	// HistorySize bounds the readline history kept by the CLI.
	HistorySize int `toml:"history_size"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{HistorySize: 500, LogLevel: "info"}
}

// Path returns the fixed location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".crabculator", "config.toml"), nil
}

// Load reads and parses the config file at Path, falling back to Default
// when the file does not exist.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// SlogLevel translates LogLevel into a slog.Level, defaulting to Info for
// an unrecognized or empty value.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
