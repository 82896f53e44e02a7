package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cultrend/trendseer/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc := buildServices(cfg)

		addr := cfg.Server.Addr
		if flagAddr != "" {
			addr = flagAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(addr, svc.analyzer, svc.taste, svc.ranker, svc.catalog,
			svc.log.With().Str("component", "server").Logger())
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides config)")
}
