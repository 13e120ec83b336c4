package cmd

import (
	"fmt"

	"github.com/jsphweid/handsplit/hands"
	"github.com/jsphweid/handsplit/midi"
	"github.com/jsphweid/handsplit/model"
	"github.com/jsphweid/handsplit/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Reports how playable each hand of a split is",
	Long: `Report splits a MIDI file with the configured engine (or both) and prints,
per hand, the number of notes, the most notes held at once, the widest span
held and how many notes sit in the other hand's register.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := midi.LoadNotes(args[0], midi.ExtractOptions{MinDuration: cfg.MinDuration, SkipDrums: cfg.SkipDrums})
		if err != nil {
			return err
		}

		var stats []model.HandStats
		for _, engine := range enginesFor(cfg.Engine) {
			p, err := hands.Split(engine, notes, cfg.Params(), hands.WithLogger(logger))
			if err != nil {
				return err
			}
			stats = append(stats, hands.Summarize(p)...)
		}
		report(cmd, stats)
		return nil
	},
}

func report(cmd *cobra.Command, stats []model.HandStats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-5s %6s %6s %6s %6s\n", "engine", "hand", "notes", "held", "span", "wrong")
	var violations []int
	for _, s := range stats {
		fmt.Fprintf(out, "%-8s %-5s %6d %6d %6d %6d\n", s.Engine, s.Hand, s.Count, s.MaxSimultaneous, s.MaxSpread, s.RegisterViolations)
		violations = append(violations, s.RegisterViolations)
	}
	fmt.Fprintf(out, "register violations: %v\n", util.Sum(violations))
}
