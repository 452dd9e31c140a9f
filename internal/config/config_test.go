package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "DRIFTER_SEED", "DRIFTER_START_FUEL",
		"DRIFTER_START_SCRAP", "REDIS_URL", "DRIFTER_OUTCOME_LOG_LIMIT", "DRIFTER_LOG_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 50.0, cfg.StartFuel)
	assert.Equal(t, 15, cfg.StartScrap)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, int64(100), cfg.OutcomeLogLimit)
	assert.Equal(t, "drifter.log", cfg.LogFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DRIFTER_SEED", "1234")
	t.Setenv("DRIFTER_START_FUEL", "12.5")
	t.Setenv("DRIFTER_START_SCRAP", "3")
	t.Setenv("REDIS_URL", " redis://localhost:6379/0 ")
	t.Setenv("DRIFTER_OUTCOME_LOG_LIMIT", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 12.5, cfg.StartFuel)
	assert.Equal(t, 3, cfg.StartScrap)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, int64(20), cfg.OutcomeLogLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"seed not a number", "DRIFTER_SEED", "abc"},
		{"negative fuel", "DRIFTER_START_FUEL", "-1"},
		{"negative scrap", "DRIFTER_START_SCRAP", "-5"},
		{"zero log limit", "DRIFTER_OUTCOME_LOG_LIMIT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}
