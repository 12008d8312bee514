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
	getNodeQuery = `
		SELECT node_id, ST_AsGeoJSON(geom)
		FROM nodes
		WHERE node_id = $1
	`

	closestNodesQuery = `
		SELECT node_id, ST_AsGeoJSON(geom)
		FROM nodes
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)
		LIMIT $3
	`
)

// PostgresNodeStore implements the store.NodeStore interface
// using a PostGIS enabled PostgreSQL database.
type PostgresNodeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresNodeStore creates a new PostgreSQL implementation of the NodeStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresNodeStore(db store.DBTX, logger *slog.Logger) *PostgresNodeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresNodeStore{
		db:     db,
		logger: logger.With(slog.String("component", "node_store")),
	}
}

// Ensure PostgresNodeStore implements store.NodeStore interface
var _ store.NodeStore = (*PostgresNodeStore)(nil)

// GetNode implements store.NodeStore.GetNode.
// Returns store.ErrNodeNotFound if the node does not exist.
func (s *PostgresNodeStore) GetNode(ctx context.Context, nodeID int64) (domain.NodeRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row domain.NodeRow
	err := s.db.QueryRowContext(ctx, getNodeQuery, nodeID).Scan(&row.NodeID, &row.Geometry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("node not found", slog.Int64("node_id", nodeID))
			return domain.NodeRow{}, store.ErrNodeNotFound
		}
		log.Error("failed to get node",
			slog.String("error", err.Error()),
			slog.Int64("node_id", nodeID))
		return domain.NodeRow{}, store.NewStoreError("node", "get", "query failed", MapError(err))
	}

	return row, nil
}

// ClosestNodes implements store.NodeStore.ClosestNodes.
// Positions are in degrees; ordering uses the PostGIS KNN operator.
func (s *PostgresNodeStore) ClosestNodes(
	ctx context.Context,
	longitude, latitude float64,
	limit int,
) ([]domain.NodeRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, closestNodesQuery, longitude, latitude, limit)
	if err != nil {
		log.Error("failed to query closest nodes",
			slog.String("error", err.Error()),
			slog.Float64("longitude", longitude),
			slog.Float64("latitude", latitude))
		return nil, store.NewStoreError("node", "closest", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	nodes := make([]domain.NodeRow, 0, limit)
	for rows.Next() {
		var row domain.NodeRow
		if err := rows.Scan(&row.NodeID, &row.Geometry); err != nil {
			return nil, store.NewStoreError("node", "closest", "scan failed", err)
		}
		nodes = append(nodes, row)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("node", "closest", "row iteration failed", MapError(err))
	}

	log.Debug("closest nodes retrieved", slog.Int("count", len(nodes)))
	return nodes, nil
}
