package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig.BannerTTL, cfg.BannerTTL)
	assert.Equal(t, DefaultConfig.ResizeDebounce, cfg.ResizeDebounce)
	assert.Equal(t, DefaultConfig.LogFile, cfg.LogFile)
	assert.Empty(t, cfg.SubmitEndpoint)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "northlight.yml")
	data := []byte("submit_endpoint: https://example.com/contact\nbanner_ttl: 2s\nfailure_rate: 0.25\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/contact", cfg.SubmitEndpoint)
	assert.Equal(t, 2*time.Second, cfg.BannerTTL)
	assert.Equal(t, 0.25, cfg.FailureRate)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultConfig.SubmitDelay, cfg.SubmitDelay)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "northlight.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_file: from-file.log\n"), 0o644))

	t.Setenv("NORTHLIGHT_LOG_FILE", "from-env.log")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.log", cfg.LogFile)
}

func TestValidateRejectsImpossibleFailureRate(t *testing.T) {
	cfg := DefaultConfig
	cfg.FailureRate = 1.5

	err := cfg.Validate()
	require.Error(t, err)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "failure_rate", cerr.Field)
}

func TestValidateBackfillsZeroValues(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultConfig.SubmitDelay, cfg.SubmitDelay)
	assert.Equal(t, DefaultConfig.BannerTTL, cfg.BannerTTL)
	assert.Equal(t, DefaultConfig.ResizeDebounce, cfg.ResizeDebounce)
	assert.Equal(t, DefaultConfig.LogFile, cfg.LogFile)
}
