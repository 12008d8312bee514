package parse

import (
	"fmt"

	"github.com/phrazzld/roadnet-api/internal/domain"
)

// LinkResponse converts a link row into a Link. Rows come from a fixed-schema
// query, so the only failure is a geometry column that is not valid JSON,
// reported as domain.ErrMalformedRow.
func LinkResponse(row domain.LinkRow) (domain.Link, error) {
	geom, err := domain.ParseGeometry(row.Geometry)
	if err != nil {
		return domain.Link{}, fmt.Errorf("%w: link %q: %v", domain.ErrMalformedRow, row.LinkDir, err)
	}

	return domain.Link{
		LinkDir:  row.LinkDir,
		LinkID:   row.LinkID,
		StName:   row.StName,
		Source:   row.Source,
		Target:   row.Target,
		Length:   row.Length,
		Geometry: geom,
	}, nil
}

// NodeResponse converts a node row into a Node.
func NodeResponse(row domain.NodeRow) (domain.Node, error) {
	geom, err := domain.ParseGeometry(row.Geometry)
	if err != nil {
		return domain.Node{}, fmt.Errorf("%w: node %d: %v", domain.ErrMalformedRow, row.NodeID, err)
	}

	return domain.Node{
		NodeID:   row.NodeID,
		Geometry: geom,
	}, nil
}
