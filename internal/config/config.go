// Package config handles TrendSeer configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	apperrors "github.com/cultrend/trendseer/internal/errors"
)

// Default returns the default configuration.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".trendseer")

	return &Config{
		App: AppConfig{
			Offline: false,
		},
		TasteGraph: TasteGraphConfig{
			BaseURL: "https://hackathon.api.qloo.com",
			Timeout: 15 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			Model:   "gemini-1.5-flash",
			Timeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Addr: ":8000",
		},
		Recommend: RecommendConfig{
			MaxResults: 3,
			Jitter:     true,
		},
		Paths: PathsConfig{
			DataDir:   dataDir,
			HistoryDB: filepath.Join(dataDir, "history.db"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: false,
		},
	}
}

// Load loads the configuration: defaults, merged with the TOML file at
// configPath if it exists, then API keys from the environment (a .env
// file in the working directory is loaded first if present).
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeConfigInvalid,
				fmt.Sprintf("failed to parse %s", configPath), apperrors.CategoryUser)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg = expandPaths(cfg)
	cfg.loadEnv()

	return cfg, nil
}

// loadEnv overlays API keys from the environment. Environment always
// wins over file values so keys never need to live in the TOML file.
func (c *Config) loadEnv() {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("QLOO_API_KEY"); v != "" {
		c.TasteGraph.APIKey = v
	}
	if v := os.Getenv("QLOO_API_URL"); v != "" {
		c.TasteGraph.BaseURL = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
}

// Validate checks that the configuration is usable. Missing API keys
// are fatal unless offline mode is set; everything downstream assumes
// a key or the offline flag, never neither.
func (c *Config) Validate() error {
	if c.App.Offline {
		return nil
	}

	var missing []string
	if c.TasteGraph.APIKey == "" {
		missing = append(missing, "QLOO_API_KEY")
	}
	if c.LLM.APIKey == "" {
		missing = append(missing, "GOOGLE_API_KEY")
	}
	if len(missing) > 0 {
		return apperrors.User(apperrors.CodeConfigInvalid,
			fmt.Sprintf("missing required environment variables: %v (set them or enable offline mode)", missing))
	}

	if c.Recommend.MaxResults < 1 {
		return apperrors.User(apperrors.CodeConfigInvalid,
			"recommend.max_results must be at least 1")
	}
	return nil
}

// Save saves the configuration to the given path.
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	return encoder.Encode(c)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".trendseer", "config.toml")
}

// expandPaths expands a leading ~ in path settings.
func expandPaths(cfg *Config) *Config {
	homeDir, _ := os.UserHomeDir()

	if len(cfg.Paths.DataDir) > 0 && cfg.Paths.DataDir[0] == '~' {
		cfg.Paths.DataDir = filepath.Join(homeDir, cfg.Paths.DataDir[1:])
	}
	if len(cfg.Paths.HistoryDB) > 0 && cfg.Paths.HistoryDB[0] == '~' {
		cfg.Paths.HistoryDB = filepath.Join(homeDir, cfg.Paths.HistoryDB[1:])
	}

	return cfg
}
