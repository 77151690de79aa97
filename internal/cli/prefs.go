// Package cli — prefs.go implements the "capo-finder prefs" command.
//
// The prefs command prints the effective preference table, so players can
// check which profile is in use or convert a profile between formats.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tom-mohr/capo-finder/internal/profile"
	"github.com/tom-mohr/capo-finder/internal/score"
)

// prefsFlags holds the flag values for the prefs command.
type prefsFlags struct {
	// format selects the output encoding: text, yaml or json.
	format string

	// defaults prints the built-in preferences regardless of any profile.
	defaults bool
}

// NewPrefsCommand creates the "prefs" cobra command.
func NewPrefsCommand() *cobra.Command {
	flags := &prefsFlags{}

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show the effective chord preferences",
		Long: `Show the chord preferences used for scoring.

The output can be saved as a profile and passed back with --prefs.

Examples:
  capo-finder prefs
  capo-finder prefs --defaults > capo-prefs.txt
  capo-finder prefs --prefs my.txt --format yaml > capo-prefs.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefs(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text, yaml, json")
	cmd.Flags().BoolVar(&flags.defaults, "defaults", false, "Show the built-in default preferences")

	return cmd
}

// runPrefs is the main logic function for the prefs command.
func runPrefs(out io.Writer, flags *prefsFlags) error {
	format, err := profile.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	// The global --json flag takes precedence over --format.
	if IsJSONOutput() {
		format = profile.FormatJSON
	}

	var prefs score.PreferenceMap
	if flags.defaults {
		prefs = score.DefaultPreferences()
	} else {
		prefs, _, err = loadPreferences()
		if err != nil {
			return err
		}
	}

	if flags.defaults && format == profile.FormatText {
		// Keep the built-in list in its curated order.
		_, err = io.WriteString(out, score.DefaultPreferencesText()+"\n")
		return err
	}

	data, err := profile.Encode(prefs, format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
