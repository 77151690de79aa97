// Package model defines the shared value types of the capo-finder CLI.
//
// This package contains pure data structures with no external dependencies.
// CapoResult values are produced fresh for every computation and are never
// persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
