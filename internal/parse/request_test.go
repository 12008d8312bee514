package parse

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeBody decodes JSON the way the HTTP layer does, preserving numbers.
func decodeBody(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var m map[string]any
	require.NoError(t, dec.Decode(&m))
	return m
}

func assertInvalidRequest(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Equal(t, message, err.Error())
}

func TestFileTypeRequestBody(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want domain.FileType
	}{
		{name: "xlsx", body: map[string]any{"file_type": "xlsx"}, want: domain.FileTypeXLSX},
		{name: "csv", body: map[string]any{"file_type": "csv"}, want: domain.FileTypeCSV},
		{name: "missing", body: map[string]any{}, want: domain.FileTypeCSV},
		{name: "nil_body", body: nil, want: domain.FileTypeCSV},
		{name: "unknown", body: map[string]any{"file_type": "pdf"}, want: domain.FileTypeCSV},
		{name: "empty", body: map[string]any{"file_type": ""}, want: domain.FileTypeCSV},
		{name: "wrong_case", body: map[string]any{"file_type": "XLSX"}, want: domain.FileTypeCSV},
		{name: "not_a_string", body: map[string]any{"file_type": json.Number("1")}, want: domain.FileTypeCSV},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FileTypeRequestBody(tc.body))
		})
	}
}

func TestLinksBetweenMultiNodesRequestBody(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		want    []int64
		wantMsg string
	}{
		{
			name: "mixed_numbers_and_strings",
			body: decodeBody(t, `{"node_ids": [1, "2", 3]}`),
			want: []int64{1, 2, 3},
		},
		{
			name: "order_preserved",
			body: decodeBody(t, `{"node_ids": [30421, 30329, 30001]}`),
			want: []int64{30421, 30329, 30001},
		},
		{
			name: "float64_values_from_default_decoder",
			body: map[string]any{"node_ids": []any{float64(4), float64(5)}},
			want: []int64{4, 5},
		},
		{
			name: "integral_float_text",
			body: decodeBody(t, `{"node_ids": [1.0, 2]}`),
			want: []int64{1, 2},
		},
		{
			name: "padded_string",
			body: decodeBody(t, `{"node_ids": [" 7 ", "8"]}`),
			want: []int64{7, 8},
		},
		{
			name:    "body_not_a_mapping",
			body:    []any{json.Number("1"), json.Number("2")},
			wantMsg: MsgMissingNodeIDs,
		},
		{
			name:    "nil_body",
			body:    nil,
			wantMsg: MsgMissingNodeIDs,
		},
		{
			name:    "missing_key",
			body:    decodeBody(t, `{"ids": [1, 2]}`),
			wantMsg: MsgMissingNodeIDs,
		},
		{
			name:    "not_a_list",
			body:    decodeBody(t, `{"node_ids": "1,2"}`),
			wantMsg: MsgNodeIDsNotList,
		},
		{
			name:    "single_element",
			body:    decodeBody(t, `{"node_ids": [1]}`),
			wantMsg: MsgNodeIDsNotList,
		},
		{
			name:    "empty_list",
			body:    decodeBody(t, `{"node_ids": []}`),
			wantMsg: MsgNodeIDsNotList,
		},
		{
			name:    "non_numeric_string",
			body:    decodeBody(t, `{"node_ids": [1, "abc"]}`),
			wantMsg: MsgNodeIDNotInteger,
		},
		{
			name:    "fractional_number",
			body:    decodeBody(t, `{"node_ids": [1, 2.5]}`),
			wantMsg: MsgNodeIDNotInteger,
		},
		{
			name:    "boolean",
			body:    decodeBody(t, `{"node_ids": [1, true]}`),
			wantMsg: MsgNodeIDNotInteger,
		},
		{
			name:    "null_element",
			body:    decodeBody(t, `{"node_ids": [null, 1]}`),
			wantMsg: MsgNodeIDNotInteger,
		},
		{
			name:    "nested_list",
			body:    decodeBody(t, `{"node_ids": [[1], 2]}`),
			wantMsg: MsgNodeIDNotInteger,
		},
		{
			name:    "overflow",
			body:    decodeBody(t, `{"node_ids": [1, "99999999999999999999"]}`),
			wantMsg: MsgNodeIDNotInteger,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LinksBetweenMultiNodesRequestBody(tc.body)
			if tc.wantMsg != "" {
				assertInvalidRequest(t, err, tc.wantMsg)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTravelRequestBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    domain.TravelQuery
		wantMsg string
	}{
		{
			name: "valid",
			body: `{"start_time": "2021-01-01 00:00:00", "end_time": "2021-01-02 00:00:00", "link_dirs": ["A_B"]}`,
			want: domain.TravelQuery{
				StartTime: "2021-01-01 00:00:00",
				EndTime:   "2021-01-02 00:00:00",
				LinkDirs:  []string{"A_B"},
			},
		},
		{
			name: "empty_link_dirs_accepted",
			body: `{"start_time": "2018-09-01 07:00:00", "end_time": "2018-09-01 23:59:59", "link_dirs": []}`,
			want: domain.TravelQuery{
				StartTime: "2018-09-01 07:00:00",
				EndTime:   "2018-09-01 23:59:59",
				LinkDirs:  []string{},
			},
		},
		{
			name: "numeric_link_dir_kept_as_text",
			body: `{"start_time": "2018-09-01 07:00:00", "end_time": "2018-09-02 07:00:00", "link_dirs": ["1234F", 5678]}`,
			want: domain.TravelQuery{
				StartTime: "2018-09-01 07:00:00",
				EndTime:   "2018-09-02 07:00:00",
				LinkDirs:  []string{"1234F", "5678"},
			},
		},
		{
			name:    "missing_start_time",
			body:    `{"end_time": "2021-01-02 00:00:00", "link_dirs": ["A_B"]}`,
			wantMsg: MsgMissingFields,
		},
		{
			name:    "missing_end_time",
			body:    `{"start_time": "2021-01-02 00:00:00", "link_dirs": ["A_B"]}`,
			wantMsg: MsgMissingFields,
		},
		{
			name:    "missing_link_dirs",
			body:    `{"start_time": "2021-01-01 00:00:00", "end_time": "2021-01-02 00:00:00"}`,
			wantMsg: MsgMissingFields,
		},
		{
			name:    "invalid_month",
			body:    `{"start_time": "2021-13-01 00:00:00", "end_time": "2021-01-02 00:00:00", "link_dirs": ["A_B"]}`,
			wantMsg: MsgBadTimestamp,
		},
		{
			name:    "iso_separator",
			body:    `{"start_time": "2021-01-01T00:00:00", "end_time": "2021-01-02 00:00:00", "link_dirs": ["A_B"]}`,
			wantMsg: MsgBadTimestamp,
		},
		{
			name:    "unpadded_hour",
			body:    `{"start_time": "2021-01-01 0:00:00", "end_time": "2021-01-02 00:00:00", "link_dirs": ["A_B"]}`,
			wantMsg: MsgBadTimestamp,
		},
		{
			name:    "date_only",
			body:    `{"start_time": "2021-01-01", "end_time": "2021-01-02 00:00:00", "link_dirs": ["A_B"]}`,
			wantMsg: MsgBadTimestamp,
		},
		{
			name:    "timestamp_not_a_string",
			body:    `{"start_time": 1609459200, "end_time": "2021-01-02 00:00:00", "link_dirs": ["A_B"]}`,
			wantMsg: MsgBadTimestamp,
		},
		{
			name:    "bad_end_time",
			body:    `{"start_time": "2021-01-01 00:00:00", "end_time": "2021-01-02 25:00:00", "link_dirs": ["A_B"]}`,
			wantMsg: MsgBadTimestamp,
		},
		{
			name:    "timestamp_checked_before_link_dirs",
			body:    `{"start_time": "yesterday", "end_time": "2021-01-02 00:00:00", "link_dirs": "A_B"}`,
			wantMsg: MsgBadTimestamp,
		},
		{
			name:    "link_dirs_not_a_list",
			body:    `{"start_time": "2021-01-01 00:00:00", "end_time": "2021-01-02 00:00:00", "link_dirs": "A_B"}`,
			wantMsg: MsgLinkDirsNotList,
		},
		{
			name:    "link_dirs_object",
			body:    `{"start_time": "2021-01-01 00:00:00", "end_time": "2021-01-02 00:00:00", "link_dirs": {"a": 1}}`,
			wantMsg: MsgLinkDirsNotList,
		},
		{
			name:    "link_dir_element_not_text",
			body:    `{"start_time": "2021-01-01 00:00:00", "end_time": "2021-01-02 00:00:00", "link_dirs": ["A_B", null]}`,
			wantMsg: MsgLinkDirNotString,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TravelRequestBody(decodeBody(t, tc.body))
			if tc.wantMsg != "" {
				assertInvalidRequest(t, err, tc.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTravelRequestBodyNilBody(t *testing.T) {
	_, err := TravelRequestBody(nil)
	assertInvalidRequest(t, err, MsgMissingFields)
}
