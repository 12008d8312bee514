package parse

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordText renders a get_links_btwn_nodes result the way Postgres prints a
// composite value: the array is quoted only when it holds a comma, and the
// JSON geometry is quoted with its inner quotes doubled.
func recordText(source, target int64, linkDirs []string, geometry string) string {
	set := "{" + strings.Join(linkDirs, ",") + "}"
	if strings.Contains(set, ",") {
		set = `"` + set + `"`
	}
	geom := `"` + strings.ReplaceAll(geometry, `"`, `""`) + `"`
	return fmt.Sprintf("(%d,%d,%s,%s)", source, target, set, geom)
}

func TestLinksBetweenNodesResponse(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantSource   int64
		wantTarget   int64
		wantLinkDirs []string
		wantType     string
		wantCoords   string
	}{
		{
			name:         "two_links",
			text:         recordText(1, 2, []string{"A_B", "B_A"}, `{"type":"Point","coordinates":[0,0]}`),
			wantSource:   1,
			wantTarget:   2,
			wantLinkDirs: []string{"A_B", "B_A"},
			wantType:     "Point",
			wantCoords:   `[0,0]`,
		},
		{
			name:         "single_link_unquoted_set",
			text:         `(30421,30329,{1234567F},"{""type"":""LineString"",""coordinates"":[[-79.39,43.66],[-79.4,43.67]]}")`,
			wantSource:   30421,
			wantTarget:   30329,
			wantLinkDirs: []string{"1234567F"},
			wantType:     "LineString",
			wantCoords:   `[[-79.39,43.66],[-79.4,43.67]]`,
		},
		{
			name: "many_links_multilinestring",
			text: recordText(
				30421, 30001,
				[]string{"1234567F", "1234568F", "1234569T"},
				`{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[1,1],[2,2]]]}`,
			),
			wantSource:   30421,
			wantTarget:   30001,
			wantLinkDirs: []string{"1234567F", "1234568F", "1234569T"},
			wantType:     "MultiLineString",
			wantCoords:   `[[[0,0],[1,1]],[[1,1],[2,2]]]`,
		},
		{
			name:         "negative_ids",
			text:         recordText(-5, 6, []string{"X_Y", "Y_Z"}, `{"type":"Point","coordinates":[1.5,-2.25]}`),
			wantSource:   -5,
			wantTarget:   6,
			wantLinkDirs: []string{"X_Y", "Y_Z"},
			wantType:     "Point",
			wantCoords:   `[1.5,-2.25]`,
		},
		{
			name:         "single_quoted_set",
			text:         `(1,2,'{A_B,B_C}',"{""type"":""Point"",""coordinates"":[3,4]}")`,
			wantSource:   1,
			wantTarget:   2,
			wantLinkDirs: []string{"A_B", "B_C"},
			wantType:     "Point",
			wantCoords:   `[3,4]`,
		},
		{
			name:         "empty_set",
			text:         `(1,2,{},"{""type"":""Point"",""coordinates"":[3,4]}")`,
			wantSource:   1,
			wantTarget:   2,
			wantLinkDirs: []string{},
			wantType:     "Point",
			wantCoords:   `[3,4]`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LinksBetweenNodesResponse(tc.text)
			require.NoError(t, err)

			assert.Equal(t, tc.wantSource, got.Source)
			assert.Equal(t, tc.wantTarget, got.Target)
			assert.Equal(t, tc.wantLinkDirs, got.LinkDirs)
			assert.Equal(t, tc.wantType, got.Geometry.Type)
			assert.Equal(t, tc.wantCoords, string(got.Geometry.Coordinates))
		})
	}
}

func TestLinksBetweenNodesResponseJSON(t *testing.T) {
	got, err := LinksBetweenNodesResponse(
		recordText(1, 2, []string{"A_B", "B_A"}, `{"type":"Point","coordinates":[0,0]}`),
	)
	require.NoError(t, err)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"source": 1,
		"target": 2,
		"link_dirs": ["A_B", "B_A"],
		"geometry": {"type": "Point", "coordinates": [0, 0]}
	}`, string(data))

	var decoded domain.LinksBetweenNodes
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, got, decoded)
}

func TestLinksBetweenNodesResponseNotFound(t *testing.T) {
	for _, text := range []string{
		"",
		"(,,,)",
		"(1,2,,)",
		`(1,2,{A_B},)`,
	} {
		t.Run(text, func(t *testing.T) {
			_, err := LinksBetweenNodesResponse(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, MsgNoLinkBetweenNodes, err.Error())
		})
	}
}

func TestLinksBetweenNodesResponseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "geometry_not_json",
			text: `(1,2,"{A_B,B_A}","{""type"":""Point"",""coordinates"":[0,0")`,
		},
		{
			name: "source_not_integer",
			text: `(x,2,"{A_B,B_A}","{""type"":""Point"",""coordinates"":[0,0]}")`,
		},
		{
			name: "missing_target",
			text: `(1,"{A_B,B_A}","{""type"":""Point"",""coordinates"":[0,0]}")`,
		},
		{
			name: "missing_open_paren",
			text: `1,2,"{A_B,B_A}","{""type"":""Point"",""coordinates"":[0,0]}")`,
		},
		{
			name: "unterminated_set",
			text: `(1,2,"{A_B,B_A},"{""type"":""Point"",""coordinates"":[0,0]}")`,
		},
		{
			name: "extra_field",
			text: `(1,2,3,"{A_B,B_A}","{""type"":""Point"",""coordinates"":[0,0]}")`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LinksBetweenNodesResponse(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedAggregate)
			assert.NotErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestQuoteLinkSet(t *testing.T) {
	assert.Equal(t, `(1,2,"{A}")`, quoteLinkSet(`(1,2,{A})`))
	assert.Equal(t, `(1,2,"{A,B}")`, quoteLinkSet(`(1,2,"{A,B}")`))
	assert.Equal(t, `(1,2,'{A,B}')`, quoteLinkSet(`(1,2,'{A,B}')`))
	assert.Equal(t, ")", quoteLinkSet(")"))
}

func TestTupleReaderToleratesSpaces(t *testing.T) {
	source, target, set, err := readLinkTuple(`( 1, 2, "{A,B}" )`)
	require.NoError(t, err)
	assert.Equal(t, int64(1), source)
	assert.Equal(t, int64(2), target)
	assert.Equal(t, "{A,B}", set)
}
