// Command trendseer is the Cultrend cultural trend CLI: an interactive
// preference chat, a one-shot analyzer, and the HTTP API server.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cultrend/trendseer/internal/brand"
	"github.com/cultrend/trendseer/internal/catalog"
	"github.com/cultrend/trendseer/internal/config"
	"github.com/cultrend/trendseer/internal/llm"
	"github.com/cultrend/trendseer/internal/recommend"
	"github.com/cultrend/trendseer/internal/tastegraph"
	"github.com/cultrend/trendseer/internal/trends"
)

var (
	flagConfig  string
	flagOffline bool
)

var rootCmd = &cobra.Command{
	Use:   "trendseer",
	Short: "Cultural trend prediction from everyday preferences",
	Long: `TrendSeer turns free-form statements about music, food, fashion,
entertainment, and lifestyle into a cultural profile, predicted trends,
and personalized recommendations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath(), "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "skip external APIs, serve built-in sample data")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads and validates configuration for a command run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagOffline {
		cfg.App.Offline = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the root zerolog logger from config.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// services bundles the pipeline components shared by the commands.
type services struct {
	cfg      *config.Config
	log      zerolog.Logger
	taste    *tastegraph.Client
	model    llm.Model
	analyzer *trends.Analyzer
	brands   *brand.Builder
	ranker   *recommend.Ranker
	catalog  *catalog.Store
}

// buildServices wires the pipeline from configuration.
func buildServices(cfg *config.Config) *services {
	log := newLogger(cfg)

	taste := tastegraph.NewClient(&tastegraph.Config{
		BaseURL: cfg.TasteGraph.BaseURL,
		APIKey:  cfg.TasteGraph.APIKey,
		Timeout: cfg.TasteGraph.Timeout,
		Offline: cfg.App.Offline,
	}, log.With().Str("component", "tastegraph").Logger())

	var model llm.Model
	if !cfg.App.Offline {
		model = llm.NewGeminiClient(&llm.GeminiConfig{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		})
	}

	var rng *rand.Rand
	if cfg.Recommend.Jitter {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &services{
		cfg:      cfg,
		log:      log,
		taste:    taste,
		model:    model,
		analyzer: trends.NewAnalyzer(taste, model, log.With().Str("component", "trends").Logger()),
		brands:   brand.NewBuilder(model, log.With().Str("component", "brand").Logger()),
		ranker:   recommend.NewRanker(rng),
		catalog:  catalog.NewStore(),
	}
}
