package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/phrazzld/roadnet-api/internal/config"
	"github.com/phrazzld/roadnet-api/internal/platform/cache"
	"github.com/phrazzld/roadnet-api/internal/platform/postgres"
	"github.com/phrazzld/roadnet-api/internal/service"
	"github.com/phrazzld/roadnet-api/internal/store"
)

// application holds the long-lived dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	redis  *redis.Client

	nodeStore   store.NodeStore
	linkStore   store.LinkStore
	travelStore store.TravelStore

	roadService service.RoadService
}

// newApplication builds stores and services on top of an open database.
// When a Redis address is configured, link-between-node lookups are cached.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.nodeStore = postgres.NewPostgresNodeStore(db, logger)
	app.linkStore = postgres.NewPostgresLinkStore(db, logger)
	app.travelStore = postgres.NewPostgresTravelStore(
		db,
		time.Duration(cfg.Query.StatementTimeoutSeconds)*time.Second,
		logger,
	)

	if cfg.Cache.RedisAddress != "" {
		app.redis = cache.NewClient(cfg.Cache.RedisAddress)
		ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
		app.linkStore = cache.NewCachedLinkStore(app.linkStore, app.redis, ttl, logger)
		logger.Info("Link cache enabled",
			"redis_address", cfg.Cache.RedisAddress,
			"ttl", ttl.String())
	}

	roadService, err := service.NewRoadService(
		app.nodeStore,
		app.linkStore,
		app.travelStore,
		cfg.Query.ClosestNodeLimit,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create road service: %w", err)
	}
	app.roadService = roadService

	return app, nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases the database and cache connections.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
