package cmd

import (
	"fmt"

	"github.com/jsphweid/handsplit/hands"
	"github.com/jsphweid/handsplit/midi"
	"github.com/jsphweid/handsplit/util"
	"github.com/spf13/cobra"
)

var listNotes bool

func init() {
	inspectCmd.Flags().BoolVar(&listNotes, "notes", false, "print every note")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Shows the notes a MIDI file yields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := midi.LoadNotes(args[0], midi.ExtractOptions{MinDuration: cfg.MinDuration, SkipDrums: cfg.SkipDrums})
		if err != nil {
			return err
		}
		sorted, err := hands.Prepare(notes)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "notes: %v\n", len(sorted))
		if len(sorted) == 0 {
			return nil
		}

		lo, hi, end := sorted[0].Pitch, sorted[0].Pitch, sorted[0].Offset
		for _, n := range sorted {
			if n.Pitch < lo {
				lo = n.Pitch
			}
			hi = util.Max(hi, n.Pitch)
			end = util.Max(end, n.Offset)
		}
		fmt.Fprintf(out, "pitch range: %v-%v\n", lo, hi)
		fmt.Fprintf(out, "time: %.3fs-%.3fs\n", sorted[0].Onset, end)

		if listNotes {
			for i, n := range sorted {
				fmt.Fprintf(out, "%5d  %v\n", i, n)
			}
		}
		return nil
	},
}
