package ui

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayview/internal/api"
)

func (a *App) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API",
		Long: `Start the JSON REST API under /api/v1.

The server stops gracefully on SIGINT or SIGTERM, waiting up to the
configured shutdown timeout for in-flight requests.`,
		RunE: a.storeCmd(func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.config.Server.Addr = addr
			}
			if !a.debug {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return api.New(a.store, a.config, a.logger).Run(ctx)
		}),
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
