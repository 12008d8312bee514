// Package postgres provides PostgreSQL implementations of the read-only
// road network stores defined in internal/store. It owns the SQL text,
// the mapping of driver errors onto store errors, and the embedded goose
// migrations that create the schema and the get_links_btwn_nodes function.
package postgres
