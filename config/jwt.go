package config

import (
	"errors"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-this-in-production"

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET" envDefault:"your-secret-key-change-this-in-production"`
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"5m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"24h"`
}

func (j JWTConfig) validate() error {
	if j.Secret == "" {
		return errors.New("config: JWT_SECRET must not be empty")
	}
	if j.AccessTTL <= 0 || j.RefreshTTL <= 0 {
		return errors.New("config: token lifetimes must be positive")
	}
	if j.RefreshTTL < j.AccessTTL {
		return errors.New("config: REFRESH_TOKEN_TTL must not be shorter than ACCESS_TOKEN_TTL")
	}
	return nil
}
