// Package chord implements chord-symbol parsing, transposition, and rendering
// for capo-finder.
//
// A chord symbol such as "G#maj7/F" is parsed into a Chord value holding:
//
//   - Root: the pitch class of the root note (G# → 8)
//   - Quality: everything between the root and an optional slash ("maj7")
//   - Bass: the pitch class after the slash, if any (F → 5)
//
// Quality strings are opaque. They are never interpreted musically and pass
// through transposition unchanged, so exotic chord qualities need no
// vocabulary update.
//
// Pitch names are resolved through a fixed 12-entry table of canonical names
// and enharmonic aliases. Rendering always uses the canonical (sharp-first)
// spelling, so parsing "Db" and rendering it yields "C#".
package chord
