// Package cli — find.go implements the "capo-finder find" command.
//
// The find command transposes the input chords into all 12 keys, scores
// each key against the player's preferences, and prints the best capo
// positions as a text table or JSON document.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tom-mohr/capo-finder/internal/capo"
	"github.com/tom-mohr/capo-finder/internal/model"
)

// findFlags holds the flag values for the find command.
type findFlags struct {
	// top limits how many ranked results are printed. 0 prints all 12.
	top int
}

// NewFindCommand creates the "find" cobra command.
func NewFindCommand() *cobra.Command {
	flags := &findFlags{}

	cmd := &cobra.Command{
		Use:   "find [chords...]",
		Short: "Rank capo positions for a chord progression",
		Long: `Rank all 12 capo positions for a chord progression.

Chords are separated by whitespace and may be given as arguments or on
stdin. Slash chords and arbitrary qualities are accepted, e.g. G#maj7/F.

Examples:
  capo-finder find E F# G#m
  capo-finder find --top 0 "Bb Eb F7"
  echo "Db Gb Ab" | capo-finder find --json`,

		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("top") {
				flags.top = settings.Top
			}
			return runFind(cmd.InOrStdin(), cmd.OutOrStdout(), args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.top, "top", 3, "Number of results to show (0 = all 12)")

	return cmd
}

// runFind is the main logic function for the find command.
func runFind(stdin io.Reader, out io.Writer, args []string, flags *findFlags) error {
	if flags.top < 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid --top %d: must be 0 or greater", flags.top))
	}

	// Step 1: Collect the chord sequence.
	chords, err := readChords(args, stdin)
	if err != nil {
		return err
	}
	VerboseLog("Read %d chords", len(chords))

	// Step 2: Resolve the preference map.
	prefs, source, err := loadPreferences()
	if err != nil {
		return err
	}

	// Step 3: Rank all 12 shifts.
	results, err := capo.ComputeBestShift(chords, prefs)
	if err != nil {
		return chordError(err)
	}
	logger.Debug("Ranked capo positions",
		zap.Stringer("best", results[0]),
		zap.Int("shifts", len(results)))

	// Step 4: Output the requested number of results.
	shown := capo.Top(results, flags.top)
	if IsJSONOutput() {
		return printFindResultJSON(out, chords, source, shown)
	}
	printFindResultText(out, shown)
	return nil
}

// findResultJSON is the JSON output structure of the find command.
type findResultJSON struct {
	Input       []string           `json:"input"`
	Preferences string             `json:"preferences"`
	Results     []model.CapoResult `json:"results"`
}

func printFindResultJSON(out io.Writer, chords []string, source string, results []model.CapoResult) error {
	return writeJSON(out, findResultJSON{
		Input:       chords,
		Preferences: source,
		Results:     results,
	})
}

// printFindResultText outputs the ranked results as a table. The best
// option is marked with an asterisk.
//
//	   SCORE  CAPO  CHORDS
//	*  13.0   0     Am C G
//	   9.0    5     Em G D
func printFindResultText(out io.Writer, results []model.CapoResult) {
	fmt.Fprintf(out, "   %-6s %-5s %s\n", "SCORE", "CAPO", "CHORDS")
	for i, r := range results {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(out, "%s  %-6s %-5d %s\n", marker, r.ScoreString(), r.Capo, r.ChordLine())
	}
}
