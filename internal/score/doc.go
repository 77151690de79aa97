// Package score holds the player's chord preferences and scores chord lists
// against them.
//
// A PreferenceMap maps a lowercase full chord symbol ("am7", "g", "d/f#")
// to a real-valued score. Scoring a chord list sums the preference of each
// chord; chords without an entry contribute zero.
//
// Preferences are usually written as free-form "chord: score" lines. The
// parser is deliberately tolerant: malformed lines are skipped rather than
// failing the whole input, so a half-edited preference list still works.
package score
