package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string `env:"PORT" envDefault:"8080"`
	DatabaseType   string `env:"DB_TYPE" envDefault:"sqlite"`
	DatabasePath   string `env:"DB_PATH" envDefault:"./wedding.db"`
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"./migrations"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	RedisURL   string        `env:"REDIS_URL"`

	// Resolver tuning
	ResolverMissDelay time.Duration `env:"RESOLVER_MISS_DELAY" envDefault:"500ms"`
	ResolverThreshold float64       `env:"RESOLVER_THRESHOLD" envDefault:"0.4"`

	// Notification email (SES)
	AWSRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	SESFromEmail string `env:"SES_FROM_EMAIL"`
	SESFromName  string `env:"SES_FROM_NAME" envDefault:"Wedding RSVP"`
	NotifyEmail  string `env:"NOTIFY_EMAIL"`

	AdminJWTSecret string `env:"ADMIN_JWT_SECRET"`
	CSRFSecret     string `env:"CSRF_SECRET"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
	Debug     bool   `env:"DEBUG" envDefault:"false"`
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is the normal case in production
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that env defaults cannot guard
func (c *Config) Validate() error {
	if c.ResolverThreshold <= 0 || c.ResolverThreshold > 1 {
		return fmt.Errorf("RESOLVER_THRESHOLD must be in (0, 1], got %v", c.ResolverThreshold)
	}
	if c.ResolverMissDelay < 0 {
		return fmt.Errorf("RESOLVER_MISS_DELAY must not be negative")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}
