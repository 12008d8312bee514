// Package testdb provides helpers for tests that need a real PostGIS
// database. Tests are skipped when ROADNET_TEST_DATABASE_URL is unset, except
// in CI where a missing database is a failure.
package testdb
