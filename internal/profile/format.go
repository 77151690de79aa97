package profile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a preference profile.
type Format string

const (
	// FormatText is the "chord: score" line format, parsed best-effort.
	FormatText Format = "text"

	// FormatYAML is a YAML mapping of chord symbols to scores.
	FormatYAML Format = "yaml"

	// FormatJSON is a JSON object of chord symbols to scores. Comments and
	// trailing commas are accepted on input.
	FormatJSON Format = "json"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format value is one of the predefined formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format.
// Returns an error if the string does not match any valid format.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid profile format: %q (valid: text, yaml, json)", s)
	}
	return format, nil
}

// FormatFromPath infers a Format from a file extension. Unknown extensions
// (including none) are treated as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json", ".jsonc":
		return FormatJSON
	default:
		return FormatText
	}
}
