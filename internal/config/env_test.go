package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"FIRE_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FIRE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadServerConfigDefaults(t *testing.T) {
	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.GridWorkers)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.WriteTimeout)
	assert.Equal(t, MaxGridCells, cfg.MaxGridCells)
}

func TestLoadServerConfigOverrides(t *testing.T) {
	t.Setenv("FIRE_ADDR", "127.0.0.1:9000")
	t.Setenv("FIRE_GRID_WORKERS", "4")
	t.Setenv("FIRE_READ_TIMEOUT", "2s")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 4, cfg.GridWorkers)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestLoadServerConfigRejectsZeroCellLimit(t *testing.T) {
	t.Setenv("FIRE_MAX_GRID_CELLS", "0")
	_, err := LoadServerConfig()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
