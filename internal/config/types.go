// Package config provides configuration types for TrendSeer.
package config

import "time"

// Config represents the main TrendSeer configuration.
type Config struct {
	App        AppConfig        `toml:"app"`
	TasteGraph TasteGraphConfig `toml:"taste_graph"`
	LLM        LLMConfig        `toml:"llm"`
	Server     ServerConfig     `toml:"server"`
	Recommend  RecommendConfig  `toml:"recommend"`
	Paths      PathsConfig      `toml:"paths"`
	Logging    LoggingConfig    `toml:"logging"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	// Offline forces fallback-only operation: no outbound API calls are
	// made, every component serves its deterministic sample data.
	Offline bool `toml:"offline"`
}

// TasteGraphConfig configures the taste-graph API client.
type TasteGraphConfig struct {
	BaseURL string        `toml:"base_url"`
	APIKey  string        `toml:"api_key"` // overridden by QLOO_API_KEY
	Timeout time.Duration `toml:"timeout"`
}

// LLMConfig configures the language model client.
type LLMConfig struct {
	BaseURL string        `toml:"base_url"`
	Model   string        `toml:"model"`
	APIKey  string        `toml:"api_key"` // overridden by GOOGLE_API_KEY
	Timeout time.Duration `toml:"timeout"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// RecommendConfig configures the recommendation ranker.
type RecommendConfig struct {
	// MaxResults is the default result count per partition.
	MaxResults int `toml:"max_results"`
	// Jitter enables the small random tie-break added to overlap scores.
	Jitter bool `toml:"jitter"`
}

// PathsConfig contains file path settings.
type PathsConfig struct {
	DataDir   string `toml:"data_dir"`
	HistoryDB string `toml:"history_db"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Pretty bool   `toml:"pretty"` // console writer instead of JSON
}

// Timeframe represents a trend prediction horizon.
type Timeframe string

const (
	Timeframe30d  Timeframe = "30d"
	Timeframe90d  Timeframe = "90d"
	Timeframe180d Timeframe = "180d"
)

// ValidTimeframe reports whether s is a supported prediction horizon.
func ValidTimeframe(s string) bool {
	switch Timeframe(s) {
	case Timeframe30d, Timeframe90d, Timeframe180d:
		return true
	}
	return false
}
