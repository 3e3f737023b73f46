package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leengari/space-missions/internal/network"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTPAddr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eng, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}

			a.logger.Info("Application ready", "addr", a.cfg.HTTPAddr, "rows", eng.Table().Len())

			srv := network.NewServer(eng, network.Options{
				Addr:            a.cfg.HTTPAddr,
				CORSOrigins:     a.cfg.CORSOrigins,
				ShutdownTimeout: a.cfg.ShutdownTimeout,
				Logger:          a.logger,
			})
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env MISSIONS_HTTP_ADDR)")
	return cmd
}
