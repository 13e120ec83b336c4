package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/handsplit/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	backfill   bool
	watchDelay time.Duration
)

func init() {
	watchCmd.Flags().BoolVar(&backfill, "backfill", false, "also split MIDI files already in the directory")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", watch.DefaultDelay, "quiet period before a changed file is split")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Splits MIDI files as they appear in a directory",
	Long: `Watch splits each MIDI file written into a directory, for example the
output folder of a transcription run. Files written by handsplit itself are
ignored.

Example:
  handsplit watch --engine both -o split/ ~/Music/transcribed`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.WatchDir
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			return errors.New("no directory to watch: pass one or set watch_dir")
		}

		process := func(ctx context.Context, path string) error {
			_, err := splitFile(cfg, logger, path)
			return err
		}
		w, err := watch.New(dir, process, watch.Options{Delay: watchDelay, Backfill: backfill, Logger: logger})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		logger.Info("splitting new files", zap.String("dir", dir), zap.String("out", cfg.OutDir))
		return w.Run(ctx)
	},
}
