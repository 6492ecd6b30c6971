package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"newsforum-backend/internal/config"
	"newsforum-backend/internal/infrastructure/database"
	"newsforum-backend/internal/infrastructure/database/seed"
	"newsforum-backend/pkg/logger"
)

type seedOptions struct {
	dataSet    string
	schemaOnly bool
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Recreate the schema and load a data set",
		Long: `Drop and recreate the topics, users, articles and comments tables,
then load one of the bundled data sets.

Examples:
  seed                      # test data set
  seed --data development   # larger local data set
  seed --schema-only        # empty tables`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dataSet, "data", "test", "Data set to load: test or development")
	cmd.Flags().BoolVar(&opts.schemaOnly, "schema-only", false, "Create the tables without inserting rows")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Overall timeout")

	return cmd
}

func dataSet(name string) (seed.Data, error) {
	switch name {
	case "test":
		return seed.TestData(), nil
	case "development":
		return seed.DevelopmentData(), nil
	default:
		return seed.Data{}, fmt.Errorf("unknown data set %q (want test or development)", name)
	}
}

func runSeed(parent context.Context, opts *seedOptions) error {
	data, err := dataSet(opts.dataSet)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.IsProduction() {
		return fmt.Errorf("refusing to seed a production database")
	}

	logger.Init(logger.Options{Level: cfg.Log.Level}, cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, opts.timeout)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := seed.CreateSchema(ctx, db.Pool); err != nil {
		return err
	}
	log.Info().Msg("[SEED] schema created")

	if opts.schemaOnly {
		return nil
	}

	if err := seed.Seed(ctx, db.Pool, data); err != nil {
		return err
	}

	log.Info().Str("data", opts.dataSet).Msg("[SEED] done")
	return nil
}
