package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/geo"
	"github.com/phrazzld/roadnet-api/internal/parse"
	"github.com/phrazzld/roadnet-api/internal/platform/logger"
	"github.com/phrazzld/roadnet-api/internal/store"
)

// DefaultClosestNodeLimit is used when a non-positive limit is configured.
const DefaultClosestNodeLimit = 10

// RoadService provides read operations over the road network.
type RoadService interface {
	// GetNode retrieves a node by id.
	GetNode(ctx context.Context, nodeID int64) (domain.Node, error)

	// ClosestNodes returns the nodes nearest to a position, nearest first,
	// each with its distance in metres.
	ClosestNodes(ctx context.Context, longitude, latitude float64) ([]domain.ClosestNode, error)

	// GetLink retrieves a link by link_dir.
	GetLink(ctx context.Context, linkDir string) (domain.Link, error)

	// LinksBetweenNodes returns the chain of links from one node to another.
	LinksBetweenNodes(ctx context.Context, fromNodeID, toNodeID int64) (domain.LinksBetweenNodes, error)

	// LinksBetweenMultiNodes returns one chain per consecutive pair of nodeIDs.
	// The first pair that fails aborts the whole request.
	LinksBetweenMultiNodes(ctx context.Context, nodeIDs []int64) ([]domain.LinksBetweenNodes, error)

	// TravelData returns travel-time observations for the query.
	TravelData(ctx context.Context, query domain.TravelQuery) ([]domain.TravelRecord, error)
}

// roadServiceImpl implements the RoadService interface
type roadServiceImpl struct {
	nodes            store.NodeStore
	links            store.LinkStore
	travel           store.TravelStore
	closestNodeLimit int
	logger           *slog.Logger
}

// NewRoadService creates a new RoadService.
// It returns an error if any of the stores is nil.
func NewRoadService(
	nodes store.NodeStore,
	links store.LinkStore,
	travel store.TravelStore,
	closestNodeLimit int,
	logger *slog.Logger,
) (RoadService, error) {
	if nodes == nil {
		return nil, errors.New("nodes store cannot be nil")
	}
	if links == nil {
		return nil, errors.New("links store cannot be nil")
	}
	if travel == nil {
		return nil, errors.New("travel store cannot be nil")
	}
	if closestNodeLimit <= 0 {
		closestNodeLimit = DefaultClosestNodeLimit
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &roadServiceImpl{
		nodes:            nodes,
		links:            links,
		travel:           travel,
		closestNodeLimit: closestNodeLimit,
		logger:           logger.With(slog.String("component", "road_service")),
	}, nil
}

// GetNode implements RoadService.GetNode
func (s *roadServiceImpl) GetNode(ctx context.Context, nodeID int64) (domain.Node, error) {
	row, err := s.nodes.GetNode(ctx, nodeID)
	if err != nil {
		return domain.Node{}, NewRoadServiceError("get_node", "failed to retrieve node", err)
	}
	return parse.NodeResponse(row)
}

// ClosestNodes implements RoadService.ClosestNodes
func (s *roadServiceImpl) ClosestNodes(
	ctx context.Context,
	longitude, latitude float64,
) ([]domain.ClosestNode, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	origin, err := geo.LngLat(longitude, latitude)
	if err != nil {
		log.Debug("rejected closest node search",
			slog.Float64("longitude", longitude),
			slog.Float64("latitude", latitude))
		return nil, domain.NewInvalidRequest(MsgInvalidCoordinates)
	}

	rows, err := s.nodes.ClosestNodes(ctx, longitude, latitude, s.closestNodeLimit)
	if err != nil {
		return nil, NewRoadServiceError("closest_nodes", "failed to search nodes", err)
	}

	result := make([]domain.ClosestNode, 0, len(rows))
	for _, row := range rows {
		node, err := parse.NodeResponse(row)
		if err != nil {
			return nil, err
		}
		position, err := geo.PointOf(node.Geometry)
		if err != nil {
			return nil, NewRoadServiceError("closest_nodes", "node geometry is not a point", err)
		}
		result = append(result, domain.ClosestNode{
			NodeID:   node.NodeID,
			Geometry: node.Geometry,
			Distance: geo.Distance(origin, position),
		})
	}

	log.Debug("closest nodes found", slog.Int("count", len(result)))
	return result, nil
}

// GetLink implements RoadService.GetLink
func (s *roadServiceImpl) GetLink(ctx context.Context, linkDir string) (domain.Link, error) {
	row, err := s.links.GetLink(ctx, linkDir)
	if err != nil {
		return domain.Link{}, NewRoadServiceError("get_link", "failed to retrieve link", err)
	}
	return parse.LinkResponse(row)
}

// LinksBetweenNodes implements RoadService.LinksBetweenNodes
func (s *roadServiceImpl) LinksBetweenNodes(
	ctx context.Context,
	fromNodeID, toNodeID int64,
) (domain.LinksBetweenNodes, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	text, err := s.links.LinksBetweenNodes(ctx, fromNodeID, toNodeID)
	if err != nil {
		return domain.LinksBetweenNodes{}, NewRoadServiceError(
			"links_between_nodes", "failed to query links", err)
	}

	result, err := parse.LinksBetweenNodesResponse(text)
	if err != nil {
		log.Debug("links between nodes not decoded",
			slog.Int64("from_node_id", fromNodeID),
			slog.Int64("to_node_id", toNodeID),
			slog.String("error", err.Error()))
		return domain.LinksBetweenNodes{}, err
	}

	attrs := []any{
		slog.Int64("from_node_id", fromNodeID),
		slog.Int64("to_node_id", toNodeID),
		slog.Int("link_count", len(result.LinkDirs)),
	}
	if length, err := geo.Length(result.Geometry); err == nil {
		attrs = append(attrs, slog.Float64("length_m", length))
	}
	log.Debug("links between nodes found", attrs...)

	return result, nil
}

// LinksBetweenMultiNodes implements RoadService.LinksBetweenMultiNodes
func (s *roadServiceImpl) LinksBetweenMultiNodes(
	ctx context.Context,
	nodeIDs []int64,
) ([]domain.LinksBetweenNodes, error) {
	if len(nodeIDs) < 2 {
		return nil, domain.NewInvalidRequest(parse.MsgNodeIDsNotList)
	}

	result := make([]domain.LinksBetweenNodes, 0, len(nodeIDs)-1)
	for i := 0; i < len(nodeIDs)-1; i++ {
		links, err := s.LinksBetweenNodes(ctx, nodeIDs[i], nodeIDs[i+1])
		if err != nil {
			return nil, err
		}
		result = append(result, links)
	}
	return result, nil
}

// TravelData implements RoadService.TravelData
func (s *roadServiceImpl) TravelData(
	ctx context.Context,
	query domain.TravelQuery,
) ([]domain.TravelRecord, error) {
	records, err := s.travel.TravelData(ctx, query)
	if err != nil {
		return nil, NewRoadServiceError("travel_data", "failed to query travel data", err)
	}
	return records, nil
}
