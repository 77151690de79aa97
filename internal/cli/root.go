// Package cli implements the cobra-based CLI commands for capo-finder.
//
// Each subcommand (find, transpose, prefs) is defined in its own file
// within this package. This file defines the root command that serves as
// the parent for all subcommands and handles global flags, configuration,
// logging, and error output.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tom-mohr/capo-finder/internal/config"
	"github.com/tom-mohr/capo-finder/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// prefsPath is the --prefs flag: a preference profile to load instead
	// of the configured or discovered one.
	prefsPath string
)

// settings is the environment configuration resolved before each command.
var settings = &config.Config{Top: config.DefaultTop, LogLevel: zapcore.WarnLevel}

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// The root command itself does not perform any action; it only provides
// help text and global flags.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "capo-finder",
		Short: "Find the easiest capo position for a chord progression",
		Long: `capo-finder transposes a chord progression into all 12 keys and ranks
the capo positions by how much you like the resulting chord shapes.

Preferences are read from --prefs, $CAPO_FINDER_PREFS, a capo-prefs.*
file in the current directory, or the built-in defaults, in that order.`,

		// SilenceUsage keeps cobra from printing usage on every error.
		// A typo in a chord is not a usage mistake.
		SilenceUsage: true,

		// SilenceErrors leaves error output to Execute, which prints text
		// or JSON depending on --json.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// PersistentPreRunE runs after flag parsing and before any
		// subcommand. The logger depends on --verbose, so it cannot be
		// built earlier.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is fine; malformed values are not.
			cfg, err := config.Load()
			if err != nil {
				return model.WrapCLIError(model.ExitGeneralError, "invalid configuration", err)
			}
			settings = cfg

			l, err := newLogger(verbose, cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},

		// Flush buffered log entries before the process exits.
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	// PersistentFlags are inherited by all subcommands, so find, transpose
	// and prefs all accept --json, --verbose and --prefs.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "",
		"Preference profile (.txt, .yaml, .yml, .json)")

	// Register subcommands. Each one lives in its own file (find.go,
	// transpose.go, prefs.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewFindCommand())
	rootCmd.AddCommand(NewTransposeCommand())
	rootCmd.AddCommand(NewPrefsCommand())

	return rootCmd
}

// newLogger builds the stderr logger. Verbose mode forces debug level;
// otherwise the configured level applies.
func newLogger(verbose bool, level zapcore.Level) (*zap.Logger, error) {
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose
	cfg.EncoderConfig.TimeKey = ""

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// Execute runs the root command and handles exit codes.
// CLIError types carry their own exit codes; other errors exit with 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(reportError(rootCmd.ErrOrStderr(), err)))
	}
}

// reportError prints err and returns the exit code it maps to.
func reportError(w io.Writer, err error) model.ExitCode {
	// errors.As also finds a CLIError that another layer has wrapped.
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(w, cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	// Generic error, for example a cobra flag parsing failure.
	printError(w, err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog emits a debug-level message. It is visible with --verbose or
// when CAPO_FINDER_LOG_LEVEL=debug.
func VerboseLog(format string, args ...interface{}) {
	logger.Sugar().Debugf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// writeJSON marshals v with 2-space indentation and writes it to w.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
