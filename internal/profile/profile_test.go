package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tom-mohr/capo-finder/internal/model"
	"github.com/tom-mohr/capo-finder/internal/score"
)

// writeFile creates a fixture file inside a fresh temporary directory and
// returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"prefs.yaml", FormatYAML},
		{"prefs.YML", FormatYAML},
		{"prefs.json", FormatJSON},
		{"prefs.jsonc", FormatJSON},
		{"prefs.txt", FormatText},
		{"prefs", FormatText},
		{"prefs.yaml.bak", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		hasError bool
	}{
		{"text", FormatText, false},
		{"yaml", FormatYAML, false},
		{"JSON", FormatJSON, false}, // case insensitive
		{"toml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestLoad_Text(t *testing.T) {
	path := writeFile(t, "capo-prefs.txt", "Am: 5\nc : 4\nbroken line\ng: nope\n")

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, p.Path)
	assert.Equal(t, FormatText, p.Format)
	assert.Equal(t, score.PreferenceMap{"am": 5, "c": 4}, p.Prefs)
	assert.Equal(t, []int{3, 4}, p.Skipped)
}

func TestLoad_YAML(t *testing.T) {
	t.Run("top-level mapping", func(t *testing.T) {
		path := writeFile(t, "prefs.yaml", "# my shapes\nAm: 5\nc#: 1.5\ng7: -2\n")

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, p.Format)
		assert.Equal(t, score.PreferenceMap{"am": 5, "c#": 1.5, "g7": -2}, p.Prefs)
		assert.Empty(t, p.Skipped)
	})

	t.Run("nested under preferences", func(t *testing.T) {
		path := writeFile(t, "prefs.yml", "preferences:\n  em: 5\n  d/f#: 2\n")

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, score.PreferenceMap{"em": 5, "d/f#": 2}, p.Prefs)
	})

	t.Run("empty file", func(t *testing.T) {
		p, err := Load(writeFile(t, "prefs.yaml", ""))
		require.NoError(t, err)
		assert.Empty(t, p.Prefs)
	})
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "prefs.json", `{
		// favorite shapes
		"Am": 5,
		"G": 4, /* block comment */
		"F": 0.5,
	}`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, p.Format)
	assert.Equal(t, score.PreferenceMap{"am": 5, "g": 4, "f": 0.5}, p.Prefs)
}

func TestLoad_JSONNested(t *testing.T) {
	path := writeFile(t, "prefs.jsonc", `{"preferences": {"e": 5, "a": 4}}`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, score.PreferenceMap{"e": 5, "a": 4}, p.Prefs)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitPreferencesNotFound, cliErr.Code)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errText string
	}{
		{"malformed yaml", "p.yaml", "am: [5\n", "failed to parse YAML"},
		{"malformed json", "p.json", `{"am": }`, "failed to parse JSON"},
		{"non-numeric yaml score", "p.yaml", "am: five\n", `chord "am"`},
		{"non-numeric json score", "p.json", `{"am": true}`, "score must be a number"},
		{"nan yaml score", "p.yaml", "c: .nan\ne: 1\n", "finite number"},
		{"infinite yaml score", "p.yaml", "d: .inf\n", "finite number"},
		{"negative infinite yaml score", "p.yaml", "preferences:\n  d: -.Inf\n", "finite number"},
		{"case-insensitive duplicate", "p.json", `{"Am": 5, "am": 3}`, "listed twice"},
		{"preferences not a mapping", "p.yaml", "preferences: 5\n", "must be a mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitInvalidPreferences, cliErr.Code)
		})
	}
}

// TestEncode_RoundTrip verifies that every format decodes back to the map
// it was encoded from.
func TestEncode_RoundTrip(t *testing.T) {
	prefs := score.PreferenceMap{"am": 5, "c#m7": 2.5, "bb": -1, "d/f#": 3}

	for _, format := range []Format{FormatText, FormatYAML, FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Encode(prefs, format)
			require.NoError(t, err)

			p, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, prefs, p.Prefs)
		})
	}
}

func TestEncode_Text(t *testing.T) {
	data, err := Encode(score.PreferenceMap{"g": 4, "am": 5}, FormatText)
	require.NoError(t, err)
	assert.Equal(t, "am: 5\ng: 4\n", string(data))
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode(score.PreferenceMap{}, Format("toml"))
	assert.Error(t, err)

	_, err = Decode(nil, Format("toml"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	t.Run("no profile", func(t *testing.T) {
		_, ok := Find(t.TempDir())
		assert.False(t, ok)
	})

	t.Run("yaml preferred over txt", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "capo-prefs.txt"), []byte("am: 1"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "capo-prefs.yaml"), []byte("am: 2"), 0o644))

		path, ok := Find(dir)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "capo-prefs.yaml"), path)
	})

	t.Run("directory with profile name is skipped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "capo-prefs.yaml"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "capo-prefs.json"), []byte("{}"), 0o644))

		path, ok := Find(dir)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "capo-prefs.json"), path)
	})
}

// TestDecode_NonFiniteScoresMatchText checks that structured profiles reject
// the non-finite scores the text parser drops, so no NaN reaches ranking.
func TestDecode_NonFiniteScoresMatchText(t *testing.T) {
	for _, in := range []string{"c: .nan\n", "c: .inf\n", "c: -.inf\n"} {
		_, err := Decode([]byte(in), FormatYAML)
		assert.Error(t, err, "yaml %q", in)
	}
	assert.Empty(t, score.ParsePreferences("c: NaN\nc: +Inf\nc: -Inf\n"))

	p, err := Decode([]byte("c: 2.5\ne: 1\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, score.PreferenceMap{"c": 2.5, "e": 1}, p.Prefs)
}
