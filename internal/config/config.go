// Package config loads service settings from MISSIONS_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings.
type Config struct {
	DataPath        string        `env:"MISSIONS_DATA_PATH" envDefault:"data/space_missions.csv"`
	HTTPAddr        string        `env:"MISSIONS_HTTP_ADDR" envDefault:"127.0.0.1:8000"`
	LogLevel        string        `env:"MISSIONS_LOG_LEVEL" envDefault:"info"`
	SeqURL          string        `env:"MISSIONS_SEQ_URL"`
	OTelEndpoint    string        `env:"MISSIONS_OTEL_ENDPOINT"`
	CORSOrigins     []string      `env:"MISSIONS_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout time.Duration `env:"MISSIONS_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
