package parse

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/roadnet-api/internal/domain"
)

// Client-facing validation messages.
const (
	MsgMissingNodeIDs    = "missing node_ids"
	MsgNodeIDsNotList    = "node_ids must be a list of at least 2 ids"
	MsgNodeIDNotInteger  = "node_id must be an integer"
	MsgMissingFields     = "missing fields"
	MsgBadTimestamp      = "bad timestamp format"
	MsgLinkDirsNotList   = "link_dirs must be a list"
	MsgLinkDirNotString  = "link_dirs must contain only link_dir strings"
	minNodeIDsPerRequest = 2
)

var validate = validator.New()

var (
	fileTypeTag  = buildFileTypeTag()
	timestampTag = "datetime=" + domain.DateTimeFormat
	errNotInt    = errors.New("value is not an integer")
)

func buildFileTypeTag() string {
	names := make([]string, len(domain.AllowedFileTypes))
	for i, ft := range domain.AllowedFileTypes {
		names[i] = string(ft)
	}
	return "required,oneof=" + strings.Join(names, " ")
}

// FileTypeRequestBody returns the export format named by body["file_type"].
// A missing or unsupported value falls back to the first allowed file type;
// this never fails.
func FileTypeRequestBody(body map[string]any) domain.FileType {
	fallback := domain.AllowedFileTypes[0]

	given, ok := body["file_type"].(string)
	if !ok {
		return fallback
	}

	if err := validate.Var(given, fileTypeTag); err != nil {
		return fallback
	}

	return domain.FileType(given)
}

// LinksBetweenMultiNodesRequestBody extracts the ordered list of node ids from
// a body of the form {"node_ids": [...]}. Each element must be an integer or
// a value that converts to one without loss (e.g. "2").
func LinksBetweenMultiNodesRequestBody(body any) ([]int64, error) {
	fields, ok := body.(map[string]any)
	if !ok {
		return nil, domain.NewInvalidRequest(MsgMissingNodeIDs)
	}

	raw, ok := fields["node_ids"]
	if !ok {
		return nil, domain.NewInvalidRequest(MsgMissingNodeIDs)
	}

	list, ok := raw.([]any)
	if !ok || len(list) < minNodeIDsPerRequest {
		return nil, domain.NewInvalidRequest(MsgNodeIDsNotList)
	}

	nodeIDs := make([]int64, 0, len(list))
	for _, v := range list {
		id, err := toInt64(v)
		if err != nil {
			return nil, domain.NewInvalidRequest(MsgNodeIDNotInteger)
		}
		nodeIDs = append(nodeIDs, id)
	}

	return nodeIDs, nil
}

// TravelRequestBody validates a travel data request body. start_time and
// end_time must follow domain.DateTimeFormat and are returned as given;
// link_dirs must be a list, possibly empty.
func TravelRequestBody(body map[string]any) (domain.TravelQuery, error) {
	for _, key := range []string{"start_time", "end_time", "link_dirs"} {
		if _, ok := body[key]; !ok {
			return domain.TravelQuery{}, domain.NewInvalidRequest(MsgMissingFields)
		}
	}

	startTime, startOK := body["start_time"].(string)
	endTime, endOK := body["end_time"].(string)
	if !startOK || !endOK || !isTimestamp(startTime) || !isTimestamp(endTime) {
		return domain.TravelQuery{}, domain.NewInvalidRequest(MsgBadTimestamp)
	}

	list, ok := body["link_dirs"].([]any)
	if !ok {
		return domain.TravelQuery{}, domain.NewInvalidRequest(MsgLinkDirsNotList)
	}

	linkDirs := make([]string, 0, len(list))
	for _, v := range list {
		switch dir := v.(type) {
		case string:
			linkDirs = append(linkDirs, dir)
		case json.Number:
			linkDirs = append(linkDirs, dir.String())
		default:
			return domain.TravelQuery{}, domain.NewInvalidRequest(MsgLinkDirNotString)
		}
	}

	return domain.TravelQuery{
		StartTime: startTime,
		EndTime:   endTime,
		LinkDirs:  linkDirs,
	}, nil
}

// isTimestamp reports whether s is a zero-padded DateTimeFormat timestamp.
// time.Parse accepts single-digit hours, so the length check enforces padding.
func isTimestamp(s string) bool {
	if len(s) != len(domain.DateTimeFormat) {
		return false
	}
	return validate.Var(s, timestampTag) == nil
}

// toInt64 converts a decoded JSON value to an integer, rejecting anything that
// would lose information.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, errNotInt
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(n)
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, errNotInt
		}
		return i, nil
	default:
		return 0, errNotInt
	}
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errNotInt
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errNotInt
	}
	return int64(f), nil
}
