package chord

import "strings"

// Tokenize splits raw chord input into symbols on runs of whitespace
// (spaces, tabs, newlines), discarding empty tokens.
//
// Example:
//
//	"  E F#\n\tG#m " → ["E", "F#", "G#m"]
//	"   "           → []
func Tokenize(text string) []string {
	return strings.Fields(text)
}
