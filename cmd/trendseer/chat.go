package main

import (
	"github.com/spf13/cobra"

	"github.com/cultrend/trendseer/internal/chat"
	"github.com/cultrend/trendseer/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive preference conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc := buildServices(cfg)

		store, err := chat.OpenStore(cfg.Paths.HistoryDB)
		if err != nil {
			svc.log.Warn().Err(err).Msg("history store unavailable, continuing without persistence")
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		engine := chat.NewEngine(svc.analyzer, svc.ranker, svc.catalog, svc.brands, store,
			svc.log.With().Str("component", "chat").Logger())
		return tui.Run(engine, chat.NewSession())
	},
}
