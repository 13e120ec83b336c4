package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/handsplit/server"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the split engines over HTTP",
	Long: `Serve exposes the engines as JSON endpoints:

  POST /split    {"notes": [...], "engine": "optimal", "params": {...}}
  POST /compare  same body, runs both engines
  GET  /healthz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr = addr
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(cfg, logger).ListenAndServe(ctx)
	},
}
