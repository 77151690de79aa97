package profile

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/tom-mohr/capo-finder/internal/model"
	"github.com/tom-mohr/capo-finder/internal/score"
)

// nestedKey is the optional top-level key that wraps the mapping in YAML
// and JSON profiles.
const nestedKey = "preferences"

// candidateNames are the file names Find looks for, in priority order.
var candidateNames = []string{
	"capo-prefs.yaml",
	"capo-prefs.yml",
	"capo-prefs.json",
	"capo-prefs.txt",
}

// Profile is a decoded preference profile.
type Profile struct {
	// Path is the file the profile was loaded from. Empty for profiles
	// decoded from memory.
	Path string

	// Format is the encoding the profile was decoded from.
	Format Format

	// Prefs holds the chord preferences with lowercase keys.
	Prefs score.PreferenceMap

	// Skipped lists the 1-based line numbers dropped by the text parser.
	// Always empty for YAML and JSON profiles.
	Skipped []int
}

// document is the nested on-disk shape used when encoding profiles.
type document struct {
	Preferences map[string]float64 `yaml:"preferences" json:"preferences"`
}

// Load reads a preference profile from path, choosing the decoder from the
// file extension (see FormatFromPath).
//
// Returns a CLIError with ExitPreferencesNotFound if the file does not
// exist, and ExitInvalidPreferences if a YAML or JSON file cannot be decoded.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitPreferencesNotFound,
				fmt.Sprintf("preference file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read preference file: %w", err)
	}

	p, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidPreferences,
			fmt.Sprintf("invalid preference file %s", path),
			err,
		)
	}
	p.Path = path
	return p, nil
}

// Decode parses profile data in the given format.
func Decode(data []byte, format Format) (*Profile, error) {
	p := &Profile{Format: format}

	switch format {
	case FormatText:
		result := score.ParsePreferencesReport(string(data))
		p.Prefs = result.Prefs
		p.Skipped = result.Skipped
		return p, nil

	case FormatYAML:
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		prefs, err := fromRaw(raw)
		if err != nil {
			return nil, err
		}
		p.Prefs = prefs
		return p, nil

	case FormatJSON:
		var raw map[string]interface{}
		// jsonc.ToJSON strips comments and trailing commas so hand-edited
		// profiles decode with the standard library.
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		prefs, err := fromRaw(raw)
		if err != nil {
			return nil, err
		}
		p.Prefs = prefs
		return p, nil

	default:
		return nil, fmt.Errorf("unsupported profile format %q", format)
	}
}

// fromRaw converts a decoded YAML/JSON mapping into a PreferenceMap.
// It unwraps a lone "preferences" key, requires numeric values, and rejects
// keys that collide once lowercased ("Am" and "am"), since map iteration
// order would otherwise decide the winner.
func fromRaw(raw map[string]interface{}) (score.PreferenceMap, error) {
	if nested, ok := raw[nestedKey]; ok && len(raw) == 1 {
		inner, ok := nested.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%q must be a mapping of chord to score", nestedKey)
		}
		raw = inner
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	prefs := make(score.PreferenceMap, len(raw))
	origin := make(map[string]string, len(raw))
	for _, k := range keys {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			return nil, fmt.Errorf("empty chord symbol")
		}
		if prev, dup := origin[key]; dup {
			return nil, fmt.Errorf("chord %q is listed twice (%q and %q)", key, prev, k)
		}

		value, err := toFloat(raw[k])
		if err != nil {
			return nil, fmt.Errorf("chord %q: %w", k, err)
		}

		origin[key] = k
		prefs[key] = value
	}
	return prefs, nil
}

// toFloat accepts the numeric types produced by yaml.v3 and encoding/json
// when decoding into interface{}. Scores must be finite: yaml.v3 decodes
// .nan and .inf to float64, and NaN has no place in the result ordering.
func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("score must be a finite number, got %v", n)
		}
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("score must be a number, got %T", v)
	}
}

// Encode renders prefs in the given format. Text output lists entries by
// score descending; YAML and JSON use the nested "preferences" shape.
// Every encoding decodes back to the same map.
func Encode(prefs score.PreferenceMap, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(score.FormatPreferences(prefs.Entries()) + "\n"), nil

	case FormatYAML:
		data, err := yaml.Marshal(document{Preferences: prefs})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil

	case FormatJSON:
		data, err := json.MarshalIndent(document{Preferences: prefs}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil

	default:
		return nil, fmt.Errorf("unsupported profile format %q", format)
	}
}

// Find searches dir for a preference profile with one of the standard names
// (capo-prefs.yaml, capo-prefs.yml, capo-prefs.json, capo-prefs.txt) and
// returns the first that exists.
func Find(dir string) (string, bool) {
	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
