package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/handsplit/config"
	"github.com/jsphweid/handsplit/hands"
	"github.com/jsphweid/handsplit/midi"
	"github.com/jsphweid/handsplit/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var maxFiles int

func init() {
	splitCmd.Flags().IntVar(&maxFiles, "max", 0, "stop after this many files per directory (0 = all)")
	rootCmd.AddCommand(splitCmd)
}

var splitCmd = &cobra.Command{
	Use:   "split <file-or-dir>...",
	Short: "Split MIDI files into left and right hand tracks",
	Long: `Split reads every note of each MIDI file, assigns it to a hand and writes
a two-track file to the output directory: <name>.hands.mid for the greedy
engine and <name>.hands_dp.mid for the optimal one.

Examples:
  handsplit split song.mid
  handsplit split --engine both -o out/ transcriptions/
  handsplit split --allowed-spread 10 --max-fingers 4 song.mid`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		for _, arg := range args {
			found, err := expand(arg)
			if err != nil {
				return err
			}
			paths = append(paths, found...)
		}

		for i, path := range paths {
			logger.Info("splitting", zap.String("path", path), zap.Int("n", i+1), zap.Int("of", len(paths)))
			written, err := splitFile(cfg, logger, path)
			if err != nil {
				return err
			}
			for _, out := range written {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
		}
		return nil
	},
}

func expand(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	return util.GatherAllMidiPaths(arg, maxFiles)
}

// enginesFor resolves the configured engine, where "both" runs each one.
func enginesFor(name string) []string {
	if name == "both" {
		return hands.EngineNames()
	}
	return []string{name}
}

// outputSuffix keeps the greedy split as the plain output and marks the
// dynamic programming one with "dp".
func outputSuffix(engine string) string {
	if engine == hands.OptimalName {
		return "dp"
	}
	return ""
}

// splitFile runs the configured engines over one MIDI file and returns the
// paths it wrote.
func splitFile(c config.Config, log *zap.Logger, path string) ([]string, error) {
	notes, err := midi.LoadNotes(path, midi.ExtractOptions{MinDuration: c.MinDuration, SkipDrums: c.SkipDrums})
	if err != nil {
		return nil, err
	}
	if err := util.EnsureDir(c.OutDir); err != nil {
		return nil, err
	}

	var written []string
	for _, engine := range enginesFor(c.Engine) {
		p, err := hands.Split(engine, notes, c.Params(), hands.WithLogger(log))
		if err != nil {
			return written, fmt.Errorf("%s: %w", path, err)
		}
		out := util.OutputPath(c.OutDir, path, outputSuffix(engine))
		if err := midi.WriteHands(out, p); err != nil {
			return written, err
		}
		log.Info("wrote split",
			zap.String("engine", engine),
			zap.String("out", out),
			zap.Int("left", len(p.Left)),
			zap.Int("right", len(p.Right)),
			zap.Float64("cost", p.Cost))
		written = append(written, out)
	}
	return written, nil
}
