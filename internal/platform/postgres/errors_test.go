package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/roadnet-api/internal/platform/postgres"
	"github.com/phrazzld/roadnet-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:       code,
		Message:    "error message",
		SchemaName: "public",
		TableName:  "links",
		Routine:    "test_routine",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	genericErr := errors.New("generic error")

	tests := []struct {
		name       string
		err        error
		wantNil    bool
		wantIs     error
		wantSame   bool
		wantSubstr string
	}{
		{
			name:    "nil error",
			err:     nil,
			wantNil: true,
		},
		{
			name:   "no rows",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "wrapped no rows",
			err:    fmt.Errorf("scan: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:       "statement timeout",
			err:        newPgError("57014"),
			wantIs:     store.ErrQueryFailed,
			wantSubstr: "statement canceled",
		},
		{
			name:       "missing function",
			err:        newPgError("42883"),
			wantIs:     store.ErrQueryFailed,
			wantSubstr: "schema object missing",
		},
		{
			name:       "missing table",
			err:        newPgError("42P01"),
			wantIs:     store.ErrQueryFailed,
			wantSubstr: "schema object missing",
		},
		{
			name:     "unmapped postgres error",
			err:      newPgError("23505"),
			wantSame: true,
		},
		{
			name:     "generic error",
			err:      genericErr,
			wantSame: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := postgres.MapError(tt.err)

			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			if tt.wantSame {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
			if tt.wantSubstr != "" {
				assert.Contains(t, got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestIsQueryCanceled(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsQueryCanceled(newPgError("57014")))
	assert.True(t, postgres.IsQueryCanceled(fmt.Errorf("query: %w", newPgError("57014"))))
	assert.False(t, postgres.IsQueryCanceled(newPgError("42883")))
	assert.False(t, postgres.IsQueryCanceled(errors.New("generic error")))
	assert.False(t, postgres.IsQueryCanceled(nil))
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsNotFoundError(sql.ErrNoRows))
	assert.True(t, postgres.IsNotFoundError(store.ErrNotFound))
	assert.True(t, postgres.IsNotFoundError(store.ErrNodeNotFound))
	assert.True(t, postgres.IsNotFoundError(fmt.Errorf("wrapped: %w", store.ErrLinkNotFound)))
	assert.False(t, postgres.IsNotFoundError(errors.New("other")))
	assert.False(t, postgres.IsNotFoundError(nil))
}
