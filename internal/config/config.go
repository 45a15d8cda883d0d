package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime options. CLI flags override these values.
type Config struct {
	DataDir       string `env:"BRAINCRUNCHER_DATA_DIR" envDefault:"./data"`
	LogLevel      string `env:"BRAINCRUNCHER_LOG_LEVEL" envDefault:"info"`
	Difficulty    string `env:"BRAINCRUNCHER_DIFFICULTY" envDefault:"easy"`
	MaxAttempts   int    `env:"BRAINCRUNCHER_MAX_ATTEMPTS" envDefault:"10000"`
	CacheSize     int    `env:"BRAINCRUNCHER_CACHE_SIZE" envDefault:"128"`
	ProgressTicks int    `env:"BRAINCRUNCHER_PROGRESS_TICKS" envDefault:"20"`
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level. Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
