package cmd

import (
	"fmt"

	"github.com/jsphweid/handsplit/hands"
	"github.com/jsphweid/handsplit/midi"
	"github.com/jsphweid/handsplit/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <file>",
	Short: "Compare the greedy and optimal splits of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := midi.LoadNotes(args[0], midi.ExtractOptions{MinDuration: cfg.MinDuration, SkipDrums: cfg.SkipDrums})
		if err != nil {
			return err
		}

		params := cfg.Params()
		greedy, err := hands.Split(hands.GreedyName, notes, params, hands.WithLogger(logger))
		if err != nil {
			return err
		}
		optimal, err := hands.Split(hands.OptimalName, notes, params, hands.WithLogger(logger))
		if err != nil {
			return err
		}
		disagree, err := hands.Disagreements(greedy, optimal)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "notes: %v\n", len(notes))
		for _, p := range []*model.Partition{greedy, optimal} {
			fmt.Fprintf(out, "%-8s cost %10.2f  left %5d  right %5d\n", p.Engine, p.Cost, len(p.Left), len(p.Right))
		}
		fmt.Fprintf(out, "notes assigned differently: %v\n", disagree)
		return nil
	},
}
