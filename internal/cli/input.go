package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tom-mohr/capo-finder/internal/capo"
	"github.com/tom-mohr/capo-finder/internal/chord"
	"github.com/tom-mohr/capo-finder/internal/model"
	"github.com/tom-mohr/capo-finder/internal/profile"
	"github.com/tom-mohr/capo-finder/internal/score"
)

// sourceDefaults names the built-in preferences in verbose logs and JSON output.
const sourceDefaults = "defaults"

// readChords collects chord symbols from positional arguments, or from
// stdin when there are none. Arguments are re-tokenized so a single quoted
// argument like "Am C G" is treated as three chords.
func readChords(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return chord.Tokenize(strings.Join(args, " ")), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read chords from stdin: %w", err)
	}
	return chord.Tokenize(string(data)), nil
}

// loadPreferences resolves the effective preference map and a description
// of where it came from.
//
// Priority order:
//  1. --prefs flag
//  2. CAPO_FINDER_PREFS
//  3. capo-prefs.{yaml,yml,json,txt} in the working directory
//  4. built-in defaults
func loadPreferences() (score.PreferenceMap, string, error) {
	// An explicit flag always wins, even over an exported environment
	// variable, so a one-off run can try a different profile.
	path := prefsPath
	if path == "" {
		path = settings.PrefsPath
	}

	// Discovery is best effort. An unreadable working directory falls
	// through to the defaults instead of failing the command.
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, ok := profile.Find(wd); ok {
				path = found
			}
		}
	}

	if path == "" {
		VerboseLog("Using built-in default preferences")
		return score.DefaultPreferences(), sourceDefaults, nil
	}

	// A named profile that is missing or invalid is an error. Falling back
	// to the defaults would silently rank against the wrong preferences.
	p, err := profile.Load(path)
	if err != nil {
		return nil, "", err
	}

	logger.Debug("Loaded preference profile",
		zap.String("path", p.Path),
		zap.String("format", p.Format.String()),
		zap.Int("entries", len(p.Prefs)))
	// Text profiles skip malformed lines rather than failing; tell the
	// user which ones were ignored.
	if len(p.Skipped) > 0 {
		logger.Warn("Ignored malformed preference lines",
			zap.String("path", p.Path),
			zap.Ints("lines", p.Skipped))
	}

	return p.Prefs, p.Path, nil
}

// chordError translates chord-processing errors into CLIErrors carrying
// the matching exit code. Other errors pass through unchanged.
func chordError(err error) error {
	var noteErr *chord.UnknownNoteError
	switch {
	case errors.As(err, &noteErr):
		return model.WrapCLIError(model.ExitInvalidChord, "invalid chord", err)
	case errors.Is(err, capo.ErrNoChords):
		return model.NewCLIError(model.ExitNoChords,
			"no chords given: pass chords as arguments or on stdin")
	default:
		return err
	}
}
