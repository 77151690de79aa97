package chord

import (
	"strings"
	"unicode/utf8"
)

// Chord is the structured form of a chord symbol.
//
// Example: "G#maj7/F" → Chord{Root: 8, Quality: "maj7", Bass: &5}
type Chord struct {
	// Root is the pitch class of the root note.
	Root PitchClass `json:"root"`

	// Quality is the free-form suffix after the root (e.g. "m7", "maj7", "").
	// It is carried verbatim through transposition and rendering.
	Quality string `json:"quality"`

	// Bass is the slash-chord bass note, or nil when the symbol has no slash.
	Bass *PitchClass `json:"bass,omitempty"`
}

// Parse converts a chord symbol into a Chord. Parsing is case-insensitive:
// the whole symbol is lowercased first, so the stored Quality is lowercase.
//
// The root is one character, or two when the second character is '#' or
// 'b'. This rule is positional and greedy: "cb7" parses as C-flat with
// quality "7", never as C with quality "b7".
//
// Everything between the root and the first '/' is the quality. The text
// after the '/' must be a single note name and becomes the bass.
//
// Returns *UnknownNoteError when the root or the bass cannot be resolved,
// including for an empty symbol.
func Parse(symbol string) (Chord, error) {
	s := strings.ToLower(symbol)

	rootLen := rootLength(s)
	root, err := NameToPitch(s[:rootLen])
	if err != nil {
		return Chord{}, err
	}

	c := Chord{Root: root, Quality: s[rootLen:]}

	// A valid root never contains '/', so the slash always sits at or
	// after rootLen once the root has resolved.
	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		c.Quality = s[rootLen:slash]
		bass, err := NameToPitch(s[slash+1:])
		if err != nil {
			return Chord{}, err
		}
		c.Bass = &bass
	}

	return c, nil
}

// rootLength returns the byte length of the root-name prefix of s.
func rootLength(s string) int {
	if s == "" {
		return 0
	}
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		return 2
	}
	// Take a whole rune so a non-ASCII first character is reported intact
	// in the UnknownNoteError rather than as a broken byte.
	_, size := utf8.DecodeRuneInString(s)
	return size
}

// Transpose returns a copy of c shifted by delta semitones. Root and bass
// wrap modulo 12 for any integer delta, including negative ones. The
// quality is copied unchanged.
func (c Chord) Transpose(delta int) Chord {
	shifted := Chord{
		Root:    c.Root.Shift(delta),
		Quality: c.Quality,
	}
	if c.Bass != nil {
		bass := c.Bass.Shift(delta)
		shifted.Bass = &bass
	}
	return shifted
}

// String renders the chord back to a symbol using canonical note names:
// root name, quality, and "/bass" for slash chords.
//
// This is not a strict inverse of Parse: enharmonic spellings are
// normalized ("Db" renders as "C#") and the quality keeps the lowercase
// form produced by Parse.
func (c Chord) String() string {
	var sb strings.Builder
	sb.WriteString(c.Root.Name())
	sb.WriteString(c.Quality)
	if c.Bass != nil {
		sb.WriteByte('/')
		sb.WriteString(c.Bass.Name())
	}
	return sb.String()
}
