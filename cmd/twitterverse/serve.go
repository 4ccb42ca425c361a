package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twitterverse/server"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve queries over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			db, err := a.database()
			if err != nil {
				return err
			}

			opts := []server.Option{
				server.WithLogger(a.log),
				server.WithDefaults(a.cfg.Query.DefaultSort, a.cfg.Query.DefaultFormat),
			}
			reg := prometheus.NewRegistry()
			if a.cfg.Server.Metrics {
				opts = append(opts, server.WithMetrics(reg))
			}
			srv := server.New(a.engine(db, reg), opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
