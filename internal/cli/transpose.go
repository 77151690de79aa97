// Package cli — transpose.go implements the "capo-finder transpose" command.
//
// The transpose command shifts a chord progression by a fixed number of
// semitones (--by), or shows the shapes to play with a given capo (--capo),
// without any scoring.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tom-mohr/capo-finder/internal/capo"
	"github.com/tom-mohr/capo-finder/internal/chord"
	"github.com/tom-mohr/capo-finder/internal/model"
)

// transposeFlags holds the flag values for the transpose command.
type transposeFlags struct {
	// by is the number of semitones to shift up (negative shifts down).
	by int

	// capo is the fret the capo sits on; the shapes are shifted down by it.
	capo int
}

// NewTransposeCommand creates the "transpose" cobra command.
func NewTransposeCommand() *cobra.Command {
	flags := &transposeFlags{}

	cmd := &cobra.Command{
		Use:   "transpose (--by N | --capo N) [chords...]",
		Short: "Shift chords by a number of semitones",
		Long: `Shift a chord progression by a fixed number of semitones.

--by N moves every chord up N semitones (negative N moves down).
--capo N prints the shapes to play with a capo on fret N so the song
sounds in its original key.

Examples:
  capo-finder transpose --by 2 Am C G
  capo-finder transpose --by=-1 F# B C#
  capo-finder transpose --capo 3 G C D`,

		RunE: func(cmd *cobra.Command, args []string) error {
			delta := flags.by
			if cmd.Flags().Changed("capo") {
				if flags.capo < 0 || flags.capo >= chord.NumPitchClasses {
					return model.NewCLIError(model.ExitGeneralError,
						fmt.Sprintf("invalid --capo %d: must be between 0 and 11", flags.capo))
				}
				delta = -flags.capo
			}
			return runTranspose(cmd.InOrStdin(), cmd.OutOrStdout(), args, delta)
		},
	}

	cmd.Flags().IntVar(&flags.by, "by", 0, "Semitones to shift (negative shifts down)")
	cmd.Flags().IntVar(&flags.capo, "capo", 0, "Capo fret to play the chords with (0-11)")
	cmd.MarkFlagsMutuallyExclusive("by", "capo")
	cmd.MarkFlagsOneRequired("by", "capo")

	return cmd
}

// transposeResultJSON is the JSON output structure of the transpose command.
type transposeResultJSON struct {
	Input  []string `json:"input"`
	Shift  int      `json:"shift"`
	Capo   int      `json:"capo"`
	Chords []string `json:"chords"`
}

// runTranspose is the main logic function for the transpose command.
func runTranspose(stdin io.Reader, out io.Writer, args []string, delta int) error {
	chords, err := readChords(args, stdin)
	if err != nil {
		return err
	}
	if len(chords) == 0 {
		return chordError(capo.ErrNoChords)
	}

	shifted, err := capo.ShiftAll(chords, delta)
	if err != nil {
		return chordError(err)
	}
	VerboseLog("Shifted %d chords by %d semitones", len(chords), delta)

	if IsJSONOutput() {
		return writeJSON(out, transposeResultJSON{
			Input:  chords,
			Shift:  chord.Mod(delta, chord.NumPitchClasses),
			Capo:   capo.CapoForShift(delta),
			Chords: shifted,
		})
	}

	fmt.Fprintln(out, strings.Join(shifted, " "))
	return nil
}
