package mocks

import (
	"context"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/store"
)

// MockNodeStore implements store.NodeStore for testing
type MockNodeStore struct {
	GetNodeFn      func(ctx context.Context, nodeID int64) (domain.NodeRow, error)
	ClosestNodesFn func(ctx context.Context, longitude, latitude float64, limit int) ([]domain.NodeRow, error)

	// Default return values
	Node         domain.NodeRow
	Nodes        []domain.NodeRow
	DefaultError error
}

var _ store.NodeStore = (*MockNodeStore)(nil)

// GetNode implements the NodeStore.GetNode method
func (m *MockNodeStore) GetNode(ctx context.Context, nodeID int64) (domain.NodeRow, error) {
	if m.GetNodeFn != nil {
		return m.GetNodeFn(ctx, nodeID)
	}
	return m.Node, m.DefaultError
}

// ClosestNodes implements the NodeStore.ClosestNodes method
func (m *MockNodeStore) ClosestNodes(
	ctx context.Context,
	longitude, latitude float64,
	limit int,
) ([]domain.NodeRow, error) {
	if m.ClosestNodesFn != nil {
		return m.ClosestNodesFn(ctx, longitude, latitude, limit)
	}
	return m.Nodes, m.DefaultError
}

// MockLinkStore implements store.LinkStore for testing
type MockLinkStore struct {
	GetLinkFn           func(ctx context.Context, linkDir string) (domain.LinkRow, error)
	LinksBetweenNodesFn func(ctx context.Context, fromNodeID, toNodeID int64) (string, error)

	// Calls records every LinksBetweenNodes invocation as a {from, to} pair.
	Calls [][2]int64

	// Default return values
	Link          domain.LinkRow
	AggregateText string
	DefaultError  error
}

var _ store.LinkStore = (*MockLinkStore)(nil)

// GetLink implements the LinkStore.GetLink method
func (m *MockLinkStore) GetLink(ctx context.Context, linkDir string) (domain.LinkRow, error) {
	if m.GetLinkFn != nil {
		return m.GetLinkFn(ctx, linkDir)
	}
	return m.Link, m.DefaultError
}

// LinksBetweenNodes implements the LinkStore.LinksBetweenNodes method
func (m *MockLinkStore) LinksBetweenNodes(ctx context.Context, fromNodeID, toNodeID int64) (string, error) {
	m.Calls = append(m.Calls, [2]int64{fromNodeID, toNodeID})
	if m.LinksBetweenNodesFn != nil {
		return m.LinksBetweenNodesFn(ctx, fromNodeID, toNodeID)
	}
	return m.AggregateText, m.DefaultError
}

// MockTravelStore implements store.TravelStore for testing
type MockTravelStore struct {
	TravelDataFn func(ctx context.Context, query domain.TravelQuery) ([]domain.TravelRecord, error)

	// Default return values
	Records      []domain.TravelRecord
	DefaultError error
}

var _ store.TravelStore = (*MockTravelStore)(nil)

// TravelData implements the TravelStore.TravelData method
func (m *MockTravelStore) TravelData(ctx context.Context, query domain.TravelQuery) ([]domain.TravelRecord, error) {
	if m.TravelDataFn != nil {
		return m.TravelDataFn(ctx, query)
	}
	return m.Records, m.DefaultError
}
