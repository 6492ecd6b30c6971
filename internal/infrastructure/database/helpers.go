package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Ping checks the database is reachable
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// HealthCheck pings the database and reports pool usage.
// Called by GET /api/health and once at startup.
func (db *PostgresDB) HealthCheck(ctx context.Context) (*PoolStats, error) {
	if err := db.Ping(ctx); err != nil {
		return nil, err
	}

	stats := db.Stats()
	if stats.TotalConns == 0 {
		return stats, fmt.Errorf("no active database connections")
	}

	log.Debug().
		Int32("total", stats.TotalConns).
		Int32("idle", stats.IdleConns).
		Int32("acquired", stats.AcquiredConns).
		Msg("[DATABASE] health check passed")

	return stats, nil
}

// PoolStats is a snapshot of the connection pool
type PoolStats struct {
	AcquiredConns int32 `json:"acquired_conns"`
	IdleConns     int32 `json:"idle_conns"`
	TotalConns    int32 `json:"total_conns"`
	MaxConns      int32 `json:"max_conns"`
}

// Stats returns the current pool statistics; zero value when the pool is closed
func (db *PostgresDB) Stats() *PoolStats {
	if db.Pool == nil {
		return &PoolStats{}
	}
	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns: raw.AcquiredConns(),
		IdleConns:     raw.IdleConns(),
		TotalConns:    raw.TotalConns(),
		MaxConns:      raw.MaxConns(),
	}
}

// Close closes every connection in the pool. Safe to call more than once.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}

	log.Info().Msg("[DATABASE] closing connection pool")
	db.Pool.Close()
	db.Pool = nil
}
