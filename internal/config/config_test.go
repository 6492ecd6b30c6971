package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_MAX_BACKUPS", "9")
	t.Setenv("LOG_COMPRESS", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9, cfg.Log.MaxBackups)
	assert.True(t, cfg.Log.Compress)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "eighty")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionNeedsCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/nc_news")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MAX_CONN_LIFETIME", "10m")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_MAX_CONNECTIONS", "")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "nc_news", cfg.DBName)
	assert.Equal(t, int32(25), cfg.MaxConns)
	assert.Equal(t, 10*time.Minute, cfg.MaxConnLifetime)
}

func TestLoadDatabaseConfig_Invalid(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PORT", "not-a-port")
	_, err := LoadDatabaseConfig()
	assert.Error(t, err)
}

func TestLoadDatabaseConfig_ReportsEveryBadVariable(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PORT", "x")
	t.Setenv("DB_RETRY_DELAY", "soon")

	_, err := LoadDatabaseConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "DB_RETRY_DELAY")
}

func TestLoadDatabaseConfig_URL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/nc_news?sslmode=disable")
	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/nc_news?sslmode=disable", cfg.URL)

	t.Setenv("DATABASE_URL", "postgres://u:p@db:notaport/nc_news")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadDatabaseConfig_PoolBounds(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_MAX_CONNECTIONS", "2")
	t.Setenv("DB_MIN_CONNECTIONS", "5")
	_, err := LoadDatabaseConfig()
	assert.ErrorContains(t, err, "pool size")
}
