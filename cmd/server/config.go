package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/roadnet-api/internal/config"
)

// loadAppConfig loads configuration from defaults, config.yaml and the
// environment.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}
	if cfg.Cache.RedisAddress != "" {
		slog.Debug("Cache configuration", "redis_address", cfg.Cache.RedisAddress)
	}

	return cfg, nil
}
