package config_test

import (
	"testing"

	"github.com/ferronlang/lox/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, float64(0), cfg.ClockEpochSeconds)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOX_PROMPT", "lox> ")
	t.Setenv("LOX_CLOCK_EPOCH_SECONDS", "1700000000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.Equal(t, 1700000000.0, cfg.ClockEpochSeconds)
}
