package parse

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkResponse(t *testing.T) {
	row := domain.LinkRow{
		LinkDir:  "A_B",
		LinkID:   7,
		StName:   "Main St",
		Source:   1,
		Target:   2,
		Length:   12.5,
		Geometry: `{"type":"Point","coordinates":[1,2]}`,
	}

	link, err := LinkResponse(row)
	require.NoError(t, err)

	assert.Equal(t, "A_B", link.LinkDir)
	assert.Equal(t, int64(7), link.LinkID)
	assert.Equal(t, "Main St", link.StName)
	assert.Equal(t, int64(1), link.Source)
	assert.Equal(t, int64(2), link.Target)
	assert.Equal(t, 12.5, link.Length)
	assert.Equal(t, "Point", link.Geometry.Type)
	assert.JSONEq(t, `[1,2]`, string(link.Geometry.Coordinates))

	data, err := json.Marshal(link)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"link_dir": "A_B",
		"link_id": 7,
		"st_name": "Main St",
		"source": 1,
		"target": 2,
		"length": 12.5,
		"geometry": {"type": "Point", "coordinates": [1, 2]}
	}`, string(data))

	var decoded domain.Link
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, link, decoded)
}

func TestLinkResponseMalformedGeometry(t *testing.T) {
	_, err := LinkResponse(domain.LinkRow{LinkDir: "A_B", Geometry: "LINESTRING(0 0, 1 1)"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedRow)
	assert.NotErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestNodeResponse(t *testing.T) {
	node, err := NodeResponse(domain.NodeRow{
		NodeID:   30421,
		Geometry: `{"type":"Point","coordinates":[-79.3957,43.6629]}`,
	})
	require.NoError(t, err)

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{"node_id":30421,"geometry":{"type":"Point","coordinates":[-79.3957,43.6629]}}`, string(data))

	var decoded domain.Node
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, node, decoded)
}

func TestNodeResponseMalformedGeometry(t *testing.T) {
	_, err := NodeResponse(domain.NodeRow{NodeID: 1, Geometry: ""})
	assert.ErrorIs(t, err, domain.ErrMalformedRow)
}
