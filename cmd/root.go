package cmd

import (
	"context"
	"fmt"

	"github.com/jsphweid/handsplit/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	cfg    config.Config

	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "handsplit",
	Short: "Split transcribed piano MIDI into left and right hand parts",
	Long: `handsplit assigns every note of a transcribed performance to the left or
right hand so that each part stays playable: limited span, limited fingers,
and each hand in its own register.

Two engines are available: "greedy" decides note by note, "optimal" runs a
dynamic program over the whole piece.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		applyFlags(cmd)
		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var flagValues struct {
	maxFingers    int
	allowedSpread int
	hysteresis    float64
	engine        string
	outDir        string
	minDuration   float64
	skipDrums     bool
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.IntVar(&flagValues.maxFingers, "max-fingers", 0, "distinct pitch classes a hand may hold before a penalty")
	flags.IntVar(&flagValues.allowedSpread, "allowed-spread", 0, "comfortable hand span in semitones")
	flags.Float64Var(&flagValues.hysteresis, "hysteresis", 0, "greedy engine switching margin, in (0, 1]")
	flags.StringVarP(&flagValues.engine, "engine", "e", "", `"greedy", "optimal" or "both"`)
	flags.StringVarP(&flagValues.outDir, "out", "o", "", "output directory")
	flags.Float64Var(&flagValues.minDuration, "min-duration", 0, "drop notes shorter than this many seconds")
	flags.BoolVar(&flagValues.skipDrums, "skip-drums", false, "ignore MIDI channel 10")
}

// applyFlags overrides the loaded config with flags set on the command line.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("max-fingers") {
		cfg.MaxFingers = flagValues.maxFingers
	}
	if flags.Changed("allowed-spread") {
		cfg.AllowedSpread = flagValues.allowedSpread
	}
	if flags.Changed("hysteresis") {
		cfg.Hysteresis = flagValues.hysteresis
	}
	if flags.Changed("engine") {
		cfg.Engine = flagValues.engine
	}
	if flags.Changed("out") {
		cfg.OutDir = flagValues.outDir
	}
	if flags.Changed("min-duration") {
		cfg.MinDuration = flagValues.minDuration
	}
	if flags.Changed("skip-drums") {
		cfg.SkipDrums = flagValues.skipDrums
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}
