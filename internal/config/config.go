// Package config reads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv   string `env:"APP_ENV"   envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
	Port     string `env:"PORT"      envDefault:"3000"`

	DB DBConfig `envPrefix:"DB_"`

	RedisAddr      string        `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
	CourseCacheTTL time.Duration `env:"COURSE_CACHE_TTL" envDefault:"1h"`

	KafkaBroker        string        `env:"KAFKA_BROKER"`
	OutboxPollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"3s"`

	JWTSecret string `env:"JWT_SECRET"`

	PromotionEndpoint string        `env:"PROMOTION_ENDPOINT" envDefault:"http://localhost:5057/api/promotioneligibilities"`
	PromotionTimeout  time.Duration `env:"PROMOTION_TIMEOUT"  envDefault:"5s"`

	MinimumRaise        decimal.Decimal `env:"MINIMUM_RAISE"         envDefault:"100"`
	ObligatoryCourseIDs []string        `env:"OBLIGATORY_COURSE_IDS" envDefault:"37e03ca7-c730-4351-834c-b66f280cdb01,1fd115cf-f44c-4982-86bc-a8fe2e4ff83e" envSeparator:","`
}

type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     string `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"     envDefault:"empmgmt"`
	SSLMode  string `env:"SSLMODE"  envDefault:"disable"`
}

// DSN is the key/value form accepted by gorm's postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// URL is the form golang-migrate expects.
func (c DBConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Load reads .env files (missing files are ignored) and parses the environment.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MinimumRaise.IsNegative() {
		return nil, fmt.Errorf("MINIMUM_RAISE must not be negative, got %s", cfg.MinimumRaise)
	}
	return cfg, nil
}
