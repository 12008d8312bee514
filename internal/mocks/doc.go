// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method. A nil
// field falls back to the mock's default return values, so tests only set
// the behaviour they care about:
//
//	nodes := &mocks.MockNodeStore{
//	    GetNodeFn: func(ctx context.Context, nodeID int64) (domain.NodeRow, error) {
//	        return domain.NodeRow{}, store.ErrNodeNotFound
//	    },
//	}
package mocks
