package domain

// NodeRow holds the columns of a node row in table order: node_id, geometry.
type NodeRow struct {
	NodeID   int64
	Geometry string
}

// Node is a point in the road graph.
type Node struct {
	NodeID   int64    `json:"node_id"`
	Geometry Geometry `json:"geometry"`
}

// ClosestNode is a node returned by a proximity search, with its great-circle
// distance in metres from the searched position.
type ClosestNode struct {
	NodeID   int64    `json:"node_id"`
	Geometry Geometry `json:"geometry"`
	Distance float64  `json:"distance"`
}
