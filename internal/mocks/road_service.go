package mocks

import (
	"context"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/service"
)

// MockRoadService implements service.RoadService for testing
type MockRoadService struct {
	GetNodeFn                func(ctx context.Context, nodeID int64) (domain.Node, error)
	ClosestNodesFn           func(ctx context.Context, longitude, latitude float64) ([]domain.ClosestNode, error)
	GetLinkFn                func(ctx context.Context, linkDir string) (domain.Link, error)
	LinksBetweenNodesFn      func(ctx context.Context, fromNodeID, toNodeID int64) (domain.LinksBetweenNodes, error)
	LinksBetweenMultiNodesFn func(ctx context.Context, nodeIDs []int64) ([]domain.LinksBetweenNodes, error)
	TravelDataFn             func(ctx context.Context, query domain.TravelQuery) ([]domain.TravelRecord, error)

	// Default error returned by methods without a custom function
	DefaultError error
}

var _ service.RoadService = (*MockRoadService)(nil)

// GetNode implements the RoadService.GetNode method
func (m *MockRoadService) GetNode(ctx context.Context, nodeID int64) (domain.Node, error) {
	if m.GetNodeFn != nil {
		return m.GetNodeFn(ctx, nodeID)
	}
	return domain.Node{}, m.DefaultError
}

// ClosestNodes implements the RoadService.ClosestNodes method
func (m *MockRoadService) ClosestNodes(
	ctx context.Context,
	longitude, latitude float64,
) ([]domain.ClosestNode, error) {
	if m.ClosestNodesFn != nil {
		return m.ClosestNodesFn(ctx, longitude, latitude)
	}
	return nil, m.DefaultError
}

// GetLink implements the RoadService.GetLink method
func (m *MockRoadService) GetLink(ctx context.Context, linkDir string) (domain.Link, error) {
	if m.GetLinkFn != nil {
		return m.GetLinkFn(ctx, linkDir)
	}
	return domain.Link{}, m.DefaultError
}

// LinksBetweenNodes implements the RoadService.LinksBetweenNodes method
func (m *MockRoadService) LinksBetweenNodes(
	ctx context.Context,
	fromNodeID, toNodeID int64,
) (domain.LinksBetweenNodes, error) {
	if m.LinksBetweenNodesFn != nil {
		return m.LinksBetweenNodesFn(ctx, fromNodeID, toNodeID)
	}
	return domain.LinksBetweenNodes{}, m.DefaultError
}

// LinksBetweenMultiNodes implements the RoadService.LinksBetweenMultiNodes method
func (m *MockRoadService) LinksBetweenMultiNodes(
	ctx context.Context,
	nodeIDs []int64,
) ([]domain.LinksBetweenNodes, error) {
	if m.LinksBetweenMultiNodesFn != nil {
		return m.LinksBetweenMultiNodesFn(ctx, nodeIDs)
	}
	return nil, m.DefaultError
}

// TravelData implements the RoadService.TravelData method
func (m *MockRoadService) TravelData(
	ctx context.Context,
	query domain.TravelQuery,
) ([]domain.TravelRecord, error) {
	if m.TravelDataFn != nil {
		return m.TravelDataFn(ctx, query)
	}
	return nil, m.DefaultError
}
