package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/platform/logger"
	"github.com/phrazzld/roadnet-api/internal/store"
)

const (
	getLinkQuery = `
		SELECT link_dir, link_id, COALESCE(st_name, ''), source, target, length, ST_AsGeoJSON(geom)
		FROM links
		WHERE link_dir = $1
	`

	// The record is returned in its text form; parse.LinksBetweenNodesResponse
	// understands that representation.
	linksBetweenNodesQuery = `SELECT get_links_btwn_nodes($1, $2)::text`
)

// PostgresLinkStore implements the store.LinkStore interface.
type PostgresLinkStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLinkStore creates a new PostgreSQL implementation of the LinkStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresLinkStore(db store.DBTX, logger *slog.Logger) *PostgresLinkStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLinkStore{
		db:     db,
		logger: logger.With(slog.String("component", "link_store")),
	}
}

// Ensure PostgresLinkStore implements store.LinkStore interface
var _ store.LinkStore = (*PostgresLinkStore)(nil)

// GetLink implements store.LinkStore.GetLink.
// Returns store.ErrLinkNotFound if no link has the given link_dir.
func (s *PostgresLinkStore) GetLink(ctx context.Context, linkDir string) (domain.LinkRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row domain.LinkRow
	err := s.db.QueryRowContext(ctx, getLinkQuery, linkDir).Scan(
		&row.LinkDir,
		&row.LinkID,
		&row.StName,
		&row.Source,
		&row.Target,
		&row.Length,
		&row.Geometry,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("link not found", slog.String("link_dir", linkDir))
			return domain.LinkRow{}, store.ErrLinkNotFound
		}
		log.Error("failed to get link",
			slog.String("error", err.Error()),
			slog.String("link_dir", linkDir))
		return domain.LinkRow{}, store.NewStoreError("link", "get", "query failed", MapError(err))
	}

	return row, nil
}

// LinksBetweenNodes implements store.LinkStore.LinksBetweenNodes.
// A NULL result (unknown nodes) is returned as an empty string, which the
// decoder reports as "no link between given nodes".
func (s *PostgresLinkStore) LinksBetweenNodes(
	ctx context.Context,
	fromNodeID, toNodeID int64,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var text sql.NullString
	err := s.db.QueryRowContext(ctx, linksBetweenNodesQuery, fromNodeID, toNodeID).Scan(&text)
	if err != nil {
		log.Error("failed to get links between nodes",
			slog.String("error", err.Error()),
			slog.Int64("from_node_id", fromNodeID),
			slog.Int64("to_node_id", toNodeID))
		return "", store.NewStoreError("link", "between_nodes", "query failed", MapError(err))
	}

	log.Debug("links between nodes retrieved",
		slog.Int64("from_node_id", fromNodeID),
		slog.Int64("to_node_id", toNodeID),
		slog.Bool("null", !text.Valid))
	return text.String, nil
}
