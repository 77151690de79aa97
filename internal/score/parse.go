package score

import (
	"math"
	"strconv"
	"strings"
)

// ParseResult is the outcome of a best-effort preference parse.
type ParseResult struct {
	// Prefs holds every line that parsed successfully.
	Prefs PreferenceMap

	// Skipped lists the 1-based line numbers of non-blank lines that were
	// dropped (no colon, more than one colon, empty key, or a score that is
	// not a finite number).
	Skipped []int
}

// ParsePreferences turns "chord: score" text into a PreferenceMap.
// See ParsePreferencesReport for the line format; this variant discards
// the list of skipped lines.
func ParsePreferences(text string) PreferenceMap {
	return ParsePreferencesReport(text).Prefs
}

// ParsePreferencesReport parses preference text line by line, keeping every
// valid line and recording the ones it had to drop.
//
// Line format:
//
//	am7 : 5
//	g:4.5
//	bb: -2
//
// Whitespace around the colon is insignificant and keys are lowercased.
// A line is dropped when it has no colon or more than one, when the key is
// empty, or when the score is not a finite float. A dropped line never
// defaults to 0; it simply contributes no entry. When a key appears more
// than once, the last valid occurrence wins.
func ParsePreferencesReport(text string) ParseResult {
	result := ParseResult{Prefs: make(PreferenceMap)}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, ok := parseLine(line)
		if !ok {
			result.Skipped = append(result.Skipped, i+1)
			continue
		}
		result.Prefs.Set(key, value)
	}

	return result
}

// parseLine splits a single "key: value" line. It reports false for any
// line that does not yield a usable entry.
func parseLine(line string) (string, float64, bool) {
	if strings.Count(line, ":") != 1 {
		return "", 0, false
	}

	rawKey, rawValue, _ := strings.Cut(line, ":")
	key := strings.TrimSpace(rawKey)
	if key == "" {
		return "", 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return "", 0, false
	}

	return key, value, true
}

// FormatPreferences renders entries in the "chord: score" text form
// accepted by ParsePreferences, one per line, in the given order.
func FormatPreferences(entries []Entry) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Chord)
		sb.WriteString(": ")
		sb.WriteString(strconv.FormatFloat(e.Score, 'g', -1, 64))
	}
	return sb.String()
}
