package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment     string
	LogLevel        slog.Level
	Seed            uint64 // 0 picks a random seed
	StartFuel       float64
	StartScrap      int
	RedisURL        string // empty disables notification broadcast
	OutcomeLogLimit int64
	LogFile         string // where the terminal client writes logs
}

// rawEnv holds the environment values before normalization.
type rawEnv struct {
	Environment     string  `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel        string  `env:"LOG_LEVEL" envDefault:"info"`
	Seed            uint64  `env:"DRIFTER_SEED" envDefault:"0"`
	StartFuel       float64 `env:"DRIFTER_START_FUEL" envDefault:"50"`
	StartScrap      int     `env:"DRIFTER_START_SCRAP" envDefault:"15"`
	RedisURL        string  `env:"REDIS_URL"`
	OutcomeLogLimit int64   `env:"DRIFTER_OUTCOME_LOG_LIMIT" envDefault:"100"`
	LogFile         string  `env:"DRIFTER_LOG_FILE" envDefault:"drifter.log"`
}

func Load() (*Config, error) {
	var raw rawEnv
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if raw.StartFuel < 0 || raw.StartScrap < 0 {
		return nil, fmt.Errorf("starting fuel and scrap must not be negative")
	}
	if raw.OutcomeLogLimit <= 0 {
		return nil, fmt.Errorf("DRIFTER_OUTCOME_LOG_LIMIT must be positive, got %d", raw.OutcomeLogLimit)
	}

	return &Config{
		Environment:     raw.Environment,
		LogLevel:        parseLogLevel(raw.LogLevel),
		Seed:            raw.Seed,
		StartFuel:       raw.StartFuel,
		StartScrap:      raw.StartScrap,
		RedisURL:        strings.TrimSpace(raw.RedisURL),
		OutcomeLogLimit: raw.OutcomeLogLimit,
		LogFile:         raw.LogFile,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
