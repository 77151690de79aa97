package score

// defaultEntries are the preferences used when the player supplies none.
// They favor the open-position shapes beginners learn first.
var defaultEntries = []Entry{
	{Chord: "em", Score: 5},
	{Chord: "e", Score: 5},
	{Chord: "am", Score: 5},
	{Chord: "am7", Score: 5},
	{Chord: "c", Score: 4},
	{Chord: "g", Score: 4},
	{Chord: "g7", Score: 4},
	{Chord: "a", Score: 4},
	{Chord: "dm", Score: 4},
	{Chord: "dm7", Score: 4},
	{Chord: "d", Score: 3},
	{Chord: "f", Score: 3},
}

// DefaultPreferences returns a fresh copy of the built-in preference map.
// Callers may modify the result freely.
func DefaultPreferences() PreferenceMap {
	prefs := make(PreferenceMap, len(defaultEntries))
	for _, e := range defaultEntries {
		prefs.Set(e.Chord, e.Score)
	}
	return prefs
}

// DefaultPreferencesText returns the built-in preferences in "chord: score"
// text form, in their canonical order.
func DefaultPreferencesText() string {
	return FormatPreferences(defaultEntries)
}
