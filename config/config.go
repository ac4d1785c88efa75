package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/olzhasq/newsletter-service/internal/secret"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseURL secret.Secret `env:"DATABASE_URL,required"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	ResendAPIKey    secret.Secret `env:"RESEND_API_KEY"`
	SenderEmail     string        `env:"SENDER_EMAIL" envDefault:"newsletter@localhost" validate:"required,email"`
	ConfirmBaseURL  string        `env:"CONFIRM_BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`
	EmailTimeoutSec int           `env:"EMAIL_TIMEOUT_SEC" envDefault:"10" validate:"min=1,max=120"`

	PendingSweepSpec string `env:"PENDING_SWEEP_SPEC" envDefault:"@every 1m"`
	PendingStaleSec  int    `env:"PENDING_STALE_SEC" envDefault:"3600" validate:"min=1"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Local dev falls back to the log sender, so the API key is only
	// mandatory once real email has to go out.
	if cfg.Env != "local" && cfg.ResendAPIKey.IsZero() {
		return nil, fmt.Errorf("invalid config: RESEND_API_KEY is required when ENV=%s", cfg.Env)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
