package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BlacklistRedis    = "redis"
	BlacklistDatabase = "database"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	S3       S3Config

	TokenBlacklistBackend string `env:"TOKEN_BLACKLIST_BACKEND" envDefault:"redis"`

	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"20"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"lms"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// S3Config is optional; avatar uploads are disabled while Bucket is empty.
type S3Config struct {
	Bucket    string `env:"S3_BUCKET"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"S3_ENDPOINT"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	PublicURL string `env:"S3_PUBLIC_URL"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine outside development
	_ = godotenv.Load()

	return Parse()
}

// Parse reads only the process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.TokenBlacklistBackend {
	case BlacklistRedis, BlacklistDatabase:
	default:
		return fmt.Errorf("config: TOKEN_BLACKLIST_BACKEND must be %q or %q, got %q",
			BlacklistRedis, BlacklistDatabase, c.TokenBlacklistBackend)
	}
	if c.RateLimitRequests < 0 {
		return errors.New("config: RATE_LIMIT_REQUESTS must not be negative")
	}
	if err := c.JWT.validate(); err != nil {
		return err
	}
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return errors.New("config: JWT_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
