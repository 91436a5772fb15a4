package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, int32(10), cfg.PG.MaxConns)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("MEDIA_BASE_URL", "https://cdn.example.com")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, "https://cdn.example.com", cfg.Media.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
}

func TestPGConfig_URL(t *testing.T) {
	c := PGConfig{Host: "db", Port: "5432", User: "foo", Password: "p@ss", Name: "foo"}
	assert.Equal(t, "postgres://foo:p%40ss@db:5432/foo?sslmode=disable", c.URL())

	c.DSN = "postgres://override"
	assert.Equal(t, "postgres://override", c.URL())
}
