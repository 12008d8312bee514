package store

import (
	"context"

	"github.com/phrazzld/roadnet-api/internal/domain"
)

// NodeStore reads nodes of the road graph.
type NodeStore interface {
	// GetNode retrieves a node by id.
	// Returns ErrNodeNotFound if the node does not exist.
	GetNode(ctx context.Context, nodeID int64) (domain.NodeRow, error)

	// ClosestNodes returns up to limit nodes ordered by distance from the
	// given position (degrees). Returns an empty slice if the table is empty.
	ClosestNodes(ctx context.Context, longitude, latitude float64, limit int) ([]domain.NodeRow, error)
}

// LinkStore reads links of the road graph.
type LinkStore interface {
	// GetLink retrieves a link by its link_dir.
	// Returns ErrLinkNotFound if the link does not exist.
	GetLink(ctx context.Context, linkDir string) (domain.LinkRow, error)

	// LinksBetweenNodes returns the text form of the get_links_btwn_nodes
	// record for the two nodes. When no path exists the database still
	// returns a record, just without a geometry field.
	LinksBetweenNodes(ctx context.Context, fromNodeID, toNodeID int64) (string, error)
}

// TravelStore reads travel-time observations.
type TravelStore interface {
	// TravelData returns the observations for the query's links within
	// [StartTime, EndTime), ordered by link_dir then time.
	TravelData(ctx context.Context, query domain.TravelQuery) ([]domain.TravelRecord, error)
}
