// Package main implements the entry point for the roadnet API server, which
// serves node, link, shortest-path and travel-time lookups over a PostGIS
// road network.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/phrazzld/roadnet-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		fmt.Sprintf("run a database migration command and exit (one of %v)", postgres.MigrationCommands),
	)
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("roadnet-api exited with error", "error", err)
		os.Exit(1)
	}
}

// run wires configuration, logging and the database together, then either
// executes a migration command or serves HTTP until shutdown.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logger.Error("Error closing database connection", "error", cerr)
			}
		}()
		if err := postgres.Migrate(ctx, db, migrateCmd); err != nil {
			return fmt.Errorf("migration %q failed: %w", migrateCmd, err)
		}
		return nil
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
