package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COPILOT_DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 512, cfg.DedupCapacity)
	assert.Equal(t, 7, cfg.OfferRetentionDays)
	assert.True(t, filepath.IsAbs(cfg.DataDir))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COPILOT_DATA_DIR", t.TempDir())
	t.Setenv("COPILOT_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("DEDUP_CAPACITY", "64")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, 64, cfg.DedupCapacity)
}

func TestValidate(t *testing.T) {
	valid := &Config{Port: 8090, DedupCapacity: 512}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Config{Port: 0, DedupCapacity: 512}).Validate())
	assert.Error(t, (&Config{Port: 70000, DedupCapacity: 512}).Validate())
	assert.Error(t, (&Config{Port: 8090, DedupCapacity: 0}).Validate())
}
