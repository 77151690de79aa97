package capo

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tom-mohr/capo-finder/internal/chord"
	"github.com/tom-mohr/capo-finder/internal/model"
	"github.com/tom-mohr/capo-finder/internal/score"
)

// ErrNoChords is returned by ComputeBestShift when the chord list is empty.
// An empty song has no meaningful capo choice, so the call is rejected
// instead of producing 12 identical zero-score results.
var ErrNoChords = errors.New("no chords given")

// ShiftAll parses every chord symbol, transposes it by delta semitones and
// renders it back with canonical spelling. The output has the same length
// and order as the input.
//
// The first symbol that fails to parse aborts the call; its
// *chord.UnknownNoteError is returned wrapped with the symbol's position.
func ShiftAll(chords []string, delta int) ([]string, error) {
	shifted := make([]string, len(chords))
	for i, symbol := range chords {
		c, err := chord.Parse(symbol)
		if err != nil {
			return nil, fmt.Errorf("chord %d (%q): %w", i+1, symbol, err)
		}
		shifted[i] = c.Transpose(delta).String()
	}
	return shifted, nil
}

// CapoForShift returns the capo fret that corresponds to transposing the
// chord shapes up by delta semitones: (-delta) mod 12.
//
// Example: shifting F# down to F is a delta of 11 (or -1); playing F shapes
// with a capo on fret 1 sounds F#.
func CapoForShift(delta int) int {
	return chord.Mod(-delta, chord.NumPitchClasses)
}

// ComputeBestShift evaluates all 12 transpositions of chords against prefs
// and returns exactly 12 results, one per capo fret 0-11, sorted by score
// descending and then capo ascending. Results are never filtered, even when
// every score is zero or negative.
//
// The call is all-or-nothing: any chord that fails to parse aborts it with
// an error wrapping *chord.UnknownNoteError, and no partial list is
// returned. An empty chord list fails with ErrNoChords.
func ComputeBestShift(chords []string, prefs score.PreferenceMap) ([]model.CapoResult, error) {
	if len(chords) == 0 {
		return nil, ErrNoChords
	}

	// Each goroutine owns exactly one slot, so no locking is needed.
	results := make([]model.CapoResult, chord.NumPitchClasses)

	var g errgroup.Group
	for delta := 0; delta < chord.NumPitchClasses; delta++ {
		delta := delta // per-iteration copy; go.mod targets go 1.21 loop semantics
		g.Go(func() error {
			shifted, err := ShiftAll(chords, delta)
			if err != nil {
				return err
			}
			results[delta] = model.CapoResult{
				Score:  score.Score(shifted, prefs),
				Capo:   CapoForShift(delta),
				Chords: shifted,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RanksBefore(results[j])
	})
	return results, nil
}

// Top truncates a ranked result list to at most n entries. A non-positive
// n returns the full list.
func Top(results []model.CapoResult, n int) []model.CapoResult {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}
