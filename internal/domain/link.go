package domain

// LinkRow holds the columns of a link row in table order:
// link_dir, link_id, st_name, source, target, length, geometry.
// Geometry is the JSON text produced by ST_AsGeoJSON.
type LinkRow struct {
	LinkDir  string
	LinkID   int64
	StName   string
	Source   int64
	Target   int64
	Length   float64
	Geometry string
}

// Link is a directed road segment between two nodes.
type Link struct {
	LinkDir  string   `json:"link_dir"`
	LinkID   int64    `json:"link_id"`
	StName   string   `json:"st_name"`
	Source   int64    `json:"source"`
	Target   int64    `json:"target"`
	Length   float64  `json:"length"`
	Geometry Geometry `json:"geometry"`
}

// LinksBetweenNodes is the shortest chain of links joining two nodes, with the
// merged geometry of the whole chain.
type LinksBetweenNodes struct {
	Source   int64    `json:"source"`
	Target   int64    `json:"target"`
	LinkDirs []string `json:"link_dirs"`
	Geometry Geometry `json:"geometry"`
}
