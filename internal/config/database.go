package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"newsforum-backend/internal/infrastructure/database"
)

// envParser reads typed values and collects every malformed variable,
// so a bad deployment reports all of them at once.
type envParser struct {
	errs []error
}

func (p *envParser) int(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s %q: not an integer", key, raw))
		return def
	}
	return v
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		p.errs = append(p.errs, fmt.Errorf("invalid %s %q: not a duration", key, raw))
		return def
	}
	return v
}

func (p *envParser) err() error {
	return errors.Join(p.errs...)
}

// LoadDatabaseConfig reads the PostgreSQL settings from the environment.
// DATABASE_URL, when present, takes precedence over the DB_* connection fields
// and is checked with the pgx parser before any connection attempt.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var p envParser

	cfg := &database.DBConfig{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     p.int("DB_PORT", 5432),
		Username: getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "nc_news"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          int32(p.int("DB_MAX_CONNECTIONS", 25)),
		MinConns:          int32(p.int("DB_MIN_CONNECTIONS", 2)),
		MaxConnLifetime:   p.duration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   p.duration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: p.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),

		MaxRetries:     p.int("DB_MAX_RETRIES", 5),
		RetryDelay:     p.duration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: p.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}
	if err := p.err(); err != nil {
		return nil, err
	}

	if cfg.URL != "" {
		if _, err := pgx.ParseConfig(cfg.URL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
	} else if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid DB_PORT: %d out of range", cfg.Port)
	}

	if cfg.MaxConns < 1 || cfg.MinConns < 0 || cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("invalid pool size: min=%d max=%d", cfg.MinConns, cfg.MaxConns)
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %d", cfg.MaxRetries)
	}

	return cfg, nil
}
