//go:build integration

// Package pgtest starts a disposable PostgreSQL container loaded with the
// canonical test data set.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsforum-backend/internal/infrastructure/database"
	"newsforum-backend/internal/infrastructure/database/seed"
)

// Env is a running container plus a connected pool
type Env struct {
	DB        *database.PostgresDB
	container *postgres.PostgresContainer
}

// Start runs postgres, connects and seeds TestData. Call Close when done.
func Start(ctx context.Context) (*Env, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	env := &Env{container: pgContainer}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	env.DB = database.NewPostgresDB(&database.DBConfig{
		URL:            connStr,
		MaxConns:       5,
		MaxRetries:     3,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	})
	if err := env.DB.Connect(ctx); err != nil {
		env.Close()
		return nil, err
	}

	if err := env.Reset(ctx); err != nil {
		env.Close()
		return nil, err
	}

	return env, nil
}

// Reset recreates the schema and reloads TestData, restarting id sequences at 1
func (e *Env) Reset(ctx context.Context) error {
	if err := seed.CreateSchema(ctx, e.DB.Pool); err != nil {
		return err
	}
	return seed.Seed(ctx, e.DB.Pool, seed.TestData())
}

func (e *Env) Close() {
	if e.DB != nil {
		e.DB.Close()
	}
	if e.container != nil {
		_ = e.container.Terminate(context.Background())
	}
}
