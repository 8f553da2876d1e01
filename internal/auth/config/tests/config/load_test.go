package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/auth/config"
	"taskhub/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "auth", cfg.Postgres.Database)
	assert.Equal(t, 8082, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 5*time.Second, cfg.Shutdown.GetTimeout())
}

func TestLoadWithEnvironment(t *testing.T) {
	t.Setenv("AUTH_POSTGRES_HOST", "db.internal")
	t.Setenv("AUTH_HTTP_PORT", "9090")
	t.Setenv("AUTH_JWT_ACCESS_TOKEN_TTL", "30m")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.GetAccessTokenTTL())
}

func TestJWTTTLFallbacks(t *testing.T) {
	cfg := config.JWTConfig{
		AccessTokenTTL:  "not-a-duration",
		RefreshTokenTTL: "also-bad",
	}

	assert.Equal(t, 15*time.Minute, cfg.GetAccessTokenTTL())
	assert.Equal(t, 24*time.Hour, cfg.GetRefreshTokenTTL())
}

func TestPostgresConnectionStrings(t *testing.T) {
	cfg := config.PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Database: "auth",
	}

	assert.Equal(t,
		"host=db port=5433 user=svc password=secret dbname=auth sslmode=disable",
		cfg.GetDSN())
	assert.Equal(t,
		"postgres://svc:secret@db:5433/auth?sslmode=disable",
		cfg.GetConnectionURL())
}

func TestLoggingEnvironment(t *testing.T) {
	development := config.LoggingConfig{Mode: "development"}
	production := config.LoggingConfig{Mode: "production"}

	assert.Equal(t, logger.Development, development.GetEnvironment())
	assert.Equal(t, logger.Production, production.GetEnvironment())
}
