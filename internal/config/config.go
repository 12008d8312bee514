package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Query    QueryConfig    `mapstructure:"query" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
}

// QueryConfig bounds the work done per request.
type QueryConfig struct {
	// ClosestNodeLimit is the number of candidates returned by the closest-node endpoint.
	ClosestNodeLimit int `mapstructure:"closest_node_limit" validate:"gt=0,lte=100"`
	// StatementTimeoutSeconds caps travel-data queries on the server side.
	StatementTimeoutSeconds int `mapstructure:"statement_timeout_seconds" validate:"gte=0"`
}

// CacheConfig configures the optional Redis cache for link-between-node
// lookups. An empty RedisAddress disables caching.
type CacheConfig struct {
	RedisAddress string `mapstructure:"redis_address" validate:"omitempty,hostname_port"`
	TTLMinutes   int    `mapstructure:"ttl_minutes" validate:"gte=0"`
}
