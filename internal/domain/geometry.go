package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Geometry is a GeoJSON-like object as stored in the geometry columns.
// Coordinates are kept as compact raw JSON so that nested arrays of any depth
// survive a serialization round trip unchanged.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseGeometry decodes the textual JSON form of a geometry.
func ParseGeometry(text string) (Geometry, error) {
	var g Geometry
	if err := json.Unmarshal([]byte(text), &g); err != nil {
		return Geometry{}, fmt.Errorf("decode geometry: %w", err)
	}

	if len(g.Coordinates) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, g.Coordinates); err != nil {
			return Geometry{}, fmt.Errorf("compact geometry coordinates: %w", err)
		}
		g.Coordinates = buf.Bytes()
	}

	return g, nil
}
