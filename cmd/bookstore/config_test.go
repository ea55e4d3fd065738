package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.LogPretty)
		assert.True(t, cfg.SeedOnStart)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_PRETTY", "false")
		t.Setenv("SEED_ON_START", "false")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.False(t, cfg.LogPretty)
		assert.False(t, cfg.SeedOnStart)
	})
}
