package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/platform/logger"
	"github.com/phrazzld/roadnet-api/internal/store"
)

const travelDataQuery = `
	SELECT link_dir, to_char(tx, 'YYYY-MM-DD HH24:MI:SS'), length, mean, stddev, confidence, pct_50
	FROM travel_data
	WHERE link_dir = ANY($1)
	  AND tx >= $2::timestamp
	  AND tx < $3::timestamp
	ORDER BY link_dir, tx
`

// PostgresTravelStore implements the store.TravelStore interface.
// Queries run in a read-only transaction bounded by a statement timeout,
// since a wide time window over many links can scan a large table.
type PostgresTravelStore struct {
	db      *sql.DB
	timeout time.Duration
	logger  *slog.Logger
}

// NewPostgresTravelStore creates a new PostgreSQL implementation of the TravelStore interface.
// A timeout of zero disables the statement timeout.
func NewPostgresTravelStore(db *sql.DB, timeout time.Duration, logger *slog.Logger) *PostgresTravelStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTravelStore{
		db:      db,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "travel_store")),
	}
}

// Ensure PostgresTravelStore implements store.TravelStore interface
var _ store.TravelStore = (*PostgresTravelStore)(nil)

// TravelData implements store.TravelStore.TravelData.
func (s *PostgresTravelStore) TravelData(
	ctx context.Context,
	query domain.TravelQuery,
) ([]domain.TravelRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	records := []domain.TravelRecord{}

	if len(query.LinkDirs) == 0 {
		return records, nil
	}

	err := store.RunReadOnly(ctx, s.db, s.timeout, func(ctx context.Context, tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, travelDataQuery, query.LinkDirs, query.StartTime, query.EndTime)
		if err != nil {
			return MapError(err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var r domain.TravelRecord
			if err := rows.Scan(
				&r.LinkDir,
				&r.Tx,
				&r.Length,
				&r.Mean,
				&r.Stddev,
				&r.Confidence,
				&r.Pct50,
			); err != nil {
				return err
			}
			records = append(records, r)
		}
		return MapError(rows.Err())
	})
	if err != nil {
		log.Error("failed to get travel data",
			slog.String("error", err.Error()),
			slog.Int("link_count", len(query.LinkDirs)),
			slog.String("start_time", query.StartTime),
			slog.String("end_time", query.EndTime))
		return nil, store.NewStoreError("travel_data", "query", "query failed", err)
	}

	log.Debug("travel data retrieved",
		slog.Int("link_count", len(query.LinkDirs)),
		slog.Int("record_count", len(records)))
	return records, nil
}
