// Package capo finds the best capo position for a chord sequence.
//
// Placing a capo at fret N raises every string by N semitones. To sound the
// same song with a capo on fret N, the player therefore fingers shapes that
// are N semitones lower. The optimizer tries all 12 shifts of the input
// chords, scores each shifted set against the player's preferences, and
// returns every option ranked best-first.
//
// The 12 shifts are independent of each other and run concurrently; the
// combined results are sorted afterwards, so the output order does not
// depend on scheduling.
package capo
