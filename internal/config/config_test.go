package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cultrend/trendseer/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://hackathon.api.qloo.com", cfg.TasteGraph.BaseURL)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Recommend.MaxResults)
	assert.True(t, cfg.Recommend.Jitter)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("QLOO_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default().Server.Addr, cfg.Server.Addr)
}

func TestLoadMergesFile(t *testing.T) {
	t.Setenv("QLOO_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("QLOO_API_URL", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
addr = ":9999"

[recommend]
max_results = 5
jitter = false

[logging]
level = "debug"
pretty = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Recommend.MaxResults)
	assert.False(t, cfg.Recommend.Jitter)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched sections keep their defaults
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Equal(t, apperrors.CategoryUser, apperrors.GetCategory(err))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("QLOO_API_KEY", "env-key")
	t.Setenv("QLOO_API_URL", "https://example.test")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[taste_graph]
api_key = "file-key"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.TasteGraph.APIKey)
	assert.Equal(t, "https://example.test", cfg.TasteGraph.BaseURL)
	assert.Equal(t, "google-key", cfg.LLM.APIKey)
}

func TestValidateOfflineNeedsNoKeys(t *testing.T) {
	cfg := Default()
	cfg.App.Offline = true

	assert.NoError(t, cfg.Validate())
}

func TestValidateMissingKeys(t *testing.T) {
	cfg := Default()

	err := cfg.Validate()

	require.Error(t, err)
	assert.Equal(t, apperrors.CategoryUser, apperrors.GetCategory(err))
	assert.Contains(t, err.Error(), "QLOO_API_KEY")
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestValidateMaxResults(t *testing.T) {
	cfg := Default()
	cfg.TasteGraph.APIKey = "k"
	cfg.LLM.APIKey = "k"
	cfg.Recommend.MaxResults = 0

	assert.Error(t, cfg.Validate())

	cfg.Recommend.MaxResults = 1
	assert.NoError(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.Server.Addr = ":7777"
	require.NoError(t, cfg.Save(path))

	t.Setenv("QLOO_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("QLOO_API_URL", "")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7777", loaded.Server.Addr)
}

func TestValidTimeframe(t *testing.T) {
	assert.True(t, ValidTimeframe("30d"))
	assert.True(t, ValidTimeframe("90d"))
	assert.True(t, ValidTimeframe("180d"))
	assert.False(t, ValidTimeframe("1y"))
	assert.False(t, ValidTimeframe(""))
}
