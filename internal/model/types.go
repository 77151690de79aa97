package model

import (
	"fmt"
	"strings"
)

// CapoResult is one ranked option for playing a chord sequence: the capo
// fret to use, the chord shapes to play with that capo, and how well those
// shapes match the player's preferences.
//
// A result is created by the capo optimizer for one of the 12 possible
// shifts and is immutable afterwards.
type CapoResult struct {
	// Score is the sum of the player's preference scores over Chords.
	// It may be zero, negative or fractional.
	Score float64 `json:"score"`

	// Capo is the fret position (0-11) at which to place the capo.
	// 0 means no capo.
	Capo int `json:"capo"`

	// Chords are the rendered chord shapes to play, in input order.
	Chords []string `json:"chords"`
}

// RanksBefore reports whether r should be listed before other: higher score
// first, and for equal scores the lower capo fret first.
func (r CapoResult) RanksBefore(other CapoResult) bool {
	if r.Score != other.Score {
		return r.Score > other.Score
	}
	return r.Capo < other.Capo
}

// ScoreString formats the score with one decimal place for display.
func (r CapoResult) ScoreString() string {
	return fmt.Sprintf("%.1f", r.Score)
}

// ChordLine joins the chord shapes with single spaces.
func (r CapoResult) ChordLine() string {
	return strings.Join(r.Chords, " ")
}

// String returns a compact one-line summary, e.g. "capo 2: Am C G (13.0)".
func (r CapoResult) String() string {
	return fmt.Sprintf("capo %d: %s (%s)", r.Capo, r.ChordLine(), r.ScoreString())
}

// ExitCode defines the process exit codes of the CLI.
// These codes allow scripts to programmatically determine the outcome
// of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidChord indicates a chord symbol contained a note name
	// that could not be resolved.
	ExitInvalidChord ExitCode = 2

	// ExitNoChords indicates the chord input was empty after tokenizing.
	ExitNoChords ExitCode = 3

	// ExitPreferencesNotFound indicates the preference file does not exist.
	ExitPreferencesNotFound ExitCode = 4

	// ExitInvalidPreferences indicates a structured (YAML/JSON) preference
	// file could not be decoded.
	ExitInvalidPreferences ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
