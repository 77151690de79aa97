// Package config resolves capo-finder defaults from the environment.
//
// Values are read from process environment variables, optionally seeded
// from a .env file via github.com/joho/godotenv. Variables already set in
// the environment take precedence over .env entries. Command-line flags
// override everything resolved here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Environment variable names.
const (
	EnvPrefs    = "CAPO_FINDER_PREFS"
	EnvTop      = "CAPO_FINDER_TOP"
	EnvLogLevel = "CAPO_FINDER_LOG_LEVEL"
)

// DefaultTop is how many ranked results the find command shows by default.
const DefaultTop = 3

// Config holds the environment-derived settings.
type Config struct {
	// PrefsPath is the preference profile to load. Empty means "search the
	// working directory, then fall back to the built-in defaults".
	PrefsPath string

	// Top is the number of results to print; 0 prints all 12.
	Top int

	// LogLevel is the minimum level for log output when --verbose is off.
	LogLevel zapcore.Level
}

// Load reads the configuration. With no arguments it loads ./.env if
// present; otherwise it loads exactly the given files, and a missing file
// is an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		PrefsPath: getEnv(EnvPrefs, ""),
		Top:       DefaultTop,
		LogLevel:  zapcore.WarnLevel,
	}

	if v := getEnv(EnvTop, ""); v != "" {
		top, err := strconv.Atoi(v)
		if err != nil || top < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", EnvTop, v)
		}
		cfg.Top = top
	}

	if v := getEnv(EnvLogLevel, ""); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
