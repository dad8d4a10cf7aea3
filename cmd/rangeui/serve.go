package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/rangeui/internal/demo"
	"github.com/vango-dev/rangeui/internal/live"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Start the live preview server.

Every browser tab gets its own server-side engine. Clicks and
input events are sent over a websocket, applied to the engine's
document and the patched result is sent back.

Examples:
  rangeui serve
  rangeui serve --port=8080
  RANGEUI_SERVER_HOST=0.0.0.0 rangeui serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}

			out := cmd.OutOrStdout()
			printBanner(out)
			success(out, "Serving on %s", cfg.URL())
			for _, v := range demo.All() {
				info(out, "%s/view/%s  %s", cfg.URL(), v.Name, v.Description)
			}
			if cfg.Metrics.Enabled {
				info(out, "metrics at %s%s", cfg.URL(), cfg.Metrics.Path)
			} else {
				warn(out, "metrics disabled")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := live.New(live.Options{Config: cfg})
			if err := srv.ListenAndServe(ctx); err != nil {
				errorMsg(cmd.ErrOrStderr(), "server stopped: %v", err)
				return err
			}
			success(out, "Stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from rangeui.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from rangeui.json)")

	return cmd
}
