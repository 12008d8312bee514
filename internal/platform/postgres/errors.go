package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/roadnet-api/internal/store"
)

// PostgreSQL error codes
const (
	// queryCanceledCode is raised when statement_timeout fires or the
	// client cancels the query.
	queryCanceledCode = "57014"

	// undefinedFunctionCode is raised when get_links_btwn_nodes or a
	// PostGIS function is missing, usually because migrations were not run.
	undefinedFunctionCode = "42883"

	// undefinedTableCode is raised when a road network table is missing.
	undefinedTableCode = "42P01"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case queryCanceledCode:
			return fmt.Errorf("%w: statement canceled: %v", store.ErrQueryFailed, err)
		case undefinedFunctionCode, undefinedTableCode:
			return fmt.Errorf("%w: schema object missing: %v", store.ErrQueryFailed, err)
		}
	}

	return err
}

// IsQueryCanceled reports whether err is a PostgreSQL query_canceled error.
func IsQueryCanceled(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == queryCanceledCode
}

// IsNotFoundError checks if the given error represents a "not found" scenario.
// This handles both sql.ErrNoRows and errors that are or wrap store.ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, store.ErrNotFound)
}
