package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppHost           string `env:"APP_HOST" envDefault:":8080"`
	AppEnv            string `env:"APP_ENV" envDefault:"development"`
	Version           string `env:"APP_VERSION" envDefault:"1.0.0"`
	DatabaseURL       string `env:"DATABASE_URL"`
	MigrationsDir     string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
