package chord

import (
	"fmt"
	"strings"
)

// NumPitchClasses is the number of pitch classes in an equal-tempered octave.
// Every shift and capo computation is performed modulo this value.
const NumPitchClasses = 12

// PitchClass identifies one of the 12 chromatic notes independent of octave.
// Valid values are 0 (C) through 11 (B).
type PitchClass int

// pitchNames lists the accepted names for each pitch class, indexed by
// PitchClass. The first entry of each row is the canonical spelling used
// for rendering. All names are lowercase; lookups lowercase their input.
//
// The table is never mutated after package initialization, so it is safe
// to read from any goroutine without locking.
var pitchNames = [NumPitchClasses][]string{
	{"c", "b#"},
	{"c#", "db"},
	{"d"},
	{"d#", "eb"},
	{"e", "fb"},
	{"f", "e#"},
	{"f#", "gb"},
	{"g"},
	{"g#", "ab"},
	{"a"},
	{"a#", "bb"},
	{"b", "cb"},
}

// pitchByName is the reverse index of pitchNames, built once at init.
var pitchByName = func() map[string]PitchClass {
	index := make(map[string]PitchClass, 2*NumPitchClasses)
	for pc, names := range pitchNames {
		for _, name := range names {
			index[name] = PitchClass(pc)
		}
	}
	return index
}()

// UnknownNoteError is returned when a note name does not match any canonical
// name or enharmonic alias in the pitch class table.
type UnknownNoteError struct {
	// Name is the normalized (lowercased) note name that failed to resolve.
	Name string
}

// Error satisfies the error interface.
func (e *UnknownNoteError) Error() string {
	return fmt.Sprintf("unknown note %q", e.Name)
}

// NameToPitch resolves a note name such as "C#", "db" or "E" to its pitch
// class. The lookup is case-insensitive and accepts every enharmonic alias
// in the table. Anything else fails with *UnknownNoteError.
func NameToPitch(name string) (PitchClass, error) {
	key := strings.ToLower(name)
	pc, ok := pitchByName[key]
	if !ok {
		return 0, &UnknownNoteError{Name: key}
	}
	return pc, nil
}

// Name returns the canonical display name for the pitch class with its
// first letter uppercased, e.g. "C#" for 1 and "A" for 9.
func (p PitchClass) Name() string {
	canonical := pitchNames[p.normalize()][0]
	return strings.ToUpper(canonical[:1]) + canonical[1:]
}

// String satisfies fmt.Stringer and returns the canonical display name.
func (p PitchClass) String() string {
	return p.Name()
}

// Shift returns the pitch class delta semitones away from p. The delta may
// be negative or larger than an octave; the result is always in [0, 11].
func (p PitchClass) Shift(delta int) PitchClass {
	return PitchClass(Mod(int(p)+delta, NumPitchClasses))
}

// normalize maps any integer onto the valid range so that Name never
// indexes outside the table, even for values built by hand.
func (p PitchClass) normalize() int {
	return Mod(int(p), NumPitchClasses)
}

// Mod computes the mathematical modulo of a by n, which is always in
// [0, n) for positive n. Go's % operator truncates toward zero and yields
// negative remainders for negative operands, which is wrong for pitch math:
// Mod(-1, 12) is 11, while -1 % 12 is -1.
func Mod(a, n int) int {
	return ((a % n) + n) % n
}
