package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTP  HTTPConfig
	PG    PGConfig
	Auth  AuthConfig
	Media MediaConfig
	Log   LogConfig
}

type HTTPConfig struct {
	Port         string        `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type PGConfig struct {
	// DSN overrides the individual DB_* settings when set.
	DSN      string `env:"PG_DSN" env-default:""`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"foo"`
	Password string `env:"DB_PASSWORD" env-default:"foo_dev_password"`
	Name     string `env:"DB_NAME" env-default:"foo"`
	MaxConns int32  `env:"DB_MAX_CONNS" env-default:"10"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" env-default:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"JWT_TTL" env-default:"24h"`
}

type MediaConfig struct {
	BaseURL string `env:"MEDIA_BASE_URL" env-default:"http://localhost:8080/media"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// URL returns the connection string for pgx and goose.
func (c PGConfig) URL() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
