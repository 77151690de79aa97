package score

import (
	"sort"
	"strings"
)

// PreferenceMap maps lowercase chord symbols to the player's score for that
// chord. Keys are full symbols (root, quality and bass), so "am7" and "a"
// are distinct entries.
type PreferenceMap map[string]float64

// Lookup returns the score for a chord symbol and whether an entry exists.
// The symbol is lowercased before the lookup. A missing entry yields
// (0, false): unknown chords are neutral, not an error.
func (m PreferenceMap) Lookup(symbol string) (float64, bool) {
	v, ok := m[strings.ToLower(symbol)]
	if !ok {
		return 0, false
	}
	return v, true
}

// Set stores a score under the lowercased symbol, replacing any earlier
// value for the same key.
func (m PreferenceMap) Set(symbol string, value float64) {
	m[strings.ToLower(symbol)] = value
}

// Score sums the preference scores of chords. Each symbol is matched
// case-insensitively; symbols without an entry score 0. A nil map scores
// every chord list as 0.
func Score(chords []string, prefs PreferenceMap) float64 {
	var sum float64
	for _, c := range chords {
		v, _ := prefs.Lookup(c)
		sum += v
	}
	return sum
}

// Entry is a single preference, used when a stable ordering is needed.
type Entry struct {
	Chord string  `json:"chord"`
	Score float64 `json:"score"`
}

// Entries returns the map's contents sorted by score descending, then by
// chord ascending, so output is deterministic.
func (m PreferenceMap) Entries() []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Chord: k, Score: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Chord < entries[j].Chord
	})
	return entries
}
