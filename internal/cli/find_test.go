package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tom-mohr/capo-finder/internal/model"
)

// TestFind_DefaultPreferences checks the top three results for a
// progression scored with the built-in preferences.
func TestFind_DefaultPreferences(t *testing.T) {
	out, err := runCLI(t, "", "find", "Am", "C", "G")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "   SCORE  CAPO  CHORDS", lines[0])
	assert.Equal(t, "*  13.0   0     Am C G", lines[1])
	assert.Equal(t, "   12.0   5     Em G D", lines[2])
	assert.Equal(t, "   11.0   7     Dm F C", lines[3])
}

func TestFind_Stdin(t *testing.T) {
	out, err := runCLI(t, "Am\tC\n G \n", "find", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "*  13.0   0     Am C G")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestFind_QuotedArgument(t *testing.T) {
	out, err := runCLI(t, "", "find", "--top", "1", "Am C  G")
	require.NoError(t, err)
	assert.Contains(t, out, "Am C G")
}

func TestFind_JSON(t *testing.T) {
	prefs := writeProfile(t, "prefs.txt", "f: 3\n")

	out, err := runCLI(t, "", "--json", "--prefs", prefs, "find", "--top", "0", "F#")
	require.NoError(t, err)

	var got findResultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"F#"}, got.Input)
	assert.Equal(t, prefs, got.Preferences)
	require.Len(t, got.Results, 12)
	assert.Equal(t, model.CapoResult{Score: 3, Capo: 1, Chords: []string{"F"}}, got.Results[0])
}

func TestFind_TopFromEnvironment(t *testing.T) {
	cmdOut := func(top string) int {
		t.Setenv("CAPO_FINDER_TOP", top)
		cmd := NewRootCommand()
		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"find", "C"})
		require.NoError(t, cmd.Execute())
		return strings.Count(buf.String(), "\n") - 1
	}

	assert.Equal(t, 5, cmdOut("5"))
	assert.Equal(t, 12, cmdOut("0"))
}

func TestFind_Errors(t *testing.T) {
	t.Run("unknown note", func(t *testing.T) {
		out, err := runCLI(t, "", "find", "Am", "H", "G")
		requireExitCode(t, err, model.ExitInvalidChord)
		assert.Contains(t, err.Error(), `unknown note "h"`)
		assert.Empty(t, out, "no partial results on failure")
	})

	t.Run("empty stdin", func(t *testing.T) {
		_, err := runCLI(t, "  \n ", "find")
		requireExitCode(t, err, model.ExitNoChords)
	})

	t.Run("missing preference file", func(t *testing.T) {
		_, err := runCLI(t, "", "--prefs", "/nonexistent/capo-prefs.yaml", "find", "C")
		requireExitCode(t, err, model.ExitPreferencesNotFound)
	})

	t.Run("invalid preference file", func(t *testing.T) {
		prefs := writeProfile(t, "prefs.json", `{"am": "five"}`)
		_, err := runCLI(t, "", "--prefs", prefs, "find", "C")
		requireExitCode(t, err, model.ExitInvalidPreferences)
	})

	t.Run("non-finite score in profile", func(t *testing.T) {
		prefs := writeProfile(t, "prefs.yaml", "c: .nan\nd: .inf\ne: 1\n")
		out, err := runCLI(t, "", "--prefs", prefs, "find", "C", "D", "E")
		requireExitCode(t, err, model.ExitInvalidPreferences)
		assert.Empty(t, out)
	})

	t.Run("negative top", func(t *testing.T) {
		_, err := runCLI(t, "", "find", "--top", "-2", "C")
		requireExitCode(t, err, model.ExitGeneralError)
	})
}

// TestFind_YAMLProfile verifies that structured profiles feed the scorer.
func TestFind_YAMLProfile(t *testing.T) {
	prefs := writeProfile(t, "prefs.yaml", "preferences:\n  bm: 10\n")

	out, err := runCLI(t, "", "--prefs", prefs, "find", "--top", "1", "Am")
	require.NoError(t, err)
	assert.Contains(t, out, "*  10.0   10    Bm")
}
