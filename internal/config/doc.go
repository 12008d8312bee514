// Package config loads server, database, query and cache settings from
// defaults, an optional config.yaml and ROADNET_* environment variables, and
// validates the result before the server starts.
package config
