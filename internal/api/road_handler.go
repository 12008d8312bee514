package api

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/phrazzld/roadnet-api/internal/api/shared"
	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/export"
	"github.com/phrazzld/roadnet-api/internal/parse"
	"github.com/phrazzld/roadnet-api/internal/platform/logger"
	"github.com/phrazzld/roadnet-api/internal/service"
)

// RoadHandler handles road network HTTP requests
type RoadHandler struct {
	roadService service.RoadService
	logger      *slog.Logger
}

// NewRoadHandler creates a new RoadHandler
func NewRoadHandler(roadService service.RoadService, logger *slog.Logger) *RoadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoadHandler{
		roadService: roadService,
		logger:      logger.With(slog.String("component", "road_handler")),
	}
}

// GetNode handles GET /api/nodes/{node_id}
func (h *RoadHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	nodeID, err := getPathInt64(r, "node_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	node, err := h.roadService.GetNode(r.Context(), nodeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, node)
}

// ClosestNodes handles GET /api/closest-node/{longitude}/{latitude}
func (h *RoadHandler) ClosestNodes(w http.ResponseWriter, r *http.Request) {
	longitude, err := getPathFloat64(r, "longitude")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	latitude, err := getPathFloat64(r, "latitude")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	nodes, err := h.roadService.ClosestNodes(r.Context(), longitude, latitude)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, nodes)
}

// GetLink handles GET /api/links/{link_dir}
func (h *RoadHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	linkDir, err := getPathString(r, "link_dir")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	link, err := h.roadService.GetLink(r.Context(), linkDir)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, link)
}

// LinksBetweenNodes handles GET /api/link-nodes/{from_node_id}/{to_node_id}
func (h *RoadHandler) LinksBetweenNodes(w http.ResponseWriter, r *http.Request) {
	fromNodeID, err := getPathInt64(r, "from_node_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	toNodeID, err := getPathInt64(r, "to_node_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	links, err := h.roadService.LinksBetweenNodes(r.Context(), fromNodeID, toNodeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, links)
}

// LinksBetweenMultiNodes handles POST /api/link-nodes
func (h *RoadHandler) LinksBetweenMultiNodes(w http.ResponseWriter, r *http.Request) {
	body, err := shared.DecodeJSONBody(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	nodeIDs, err := parse.LinksBetweenMultiNodesRequestBody(body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	links, err := h.roadService.LinksBetweenMultiNodes(r.Context(), nodeIDs)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, links)
}

// TravelData handles POST /api/travel-data
func (h *RoadHandler) TravelData(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeObject(w, r)
	if !ok {
		return
	}

	query, err := parse.TravelRequestBody(body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	records, err := h.roadService.TravelData(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// TravelDataFile handles POST /api/travel-data-file.
// The body is a travel query plus an optional file_type (csv or xlsx).
func (h *RoadHandler) TravelDataFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, ok := h.decodeObject(w, r)
	if !ok {
		return
	}

	query, err := parse.TravelRequestBody(body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	fileType := parse.FileTypeRequestBody(body)

	records, err := h.roadService.TravelData(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Render fully before writing headers so a failure can still be
	// reported as a JSON error.
	var buf bytes.Buffer
	if err := export.Write(&buf, fileType, records); err != nil {
		HandleAPIError(w, r, err, "Failed to export travel data")
		return
	}

	w.Header().Set("Content-Type", export.ContentType(fileType))
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(fileType)+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error("failed to write travel data file",
			slog.String("error", err.Error()),
			slog.String("file_type", string(fileType)))
	}
}

// decodeObject decodes a JSON object body. A body that is valid JSON but
// not an object is treated as missing every field.
func (h *RoadHandler) decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	body, err := shared.DecodeJSONBody(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	obj, ok := body.(map[string]any)
	if !ok {
		HandleAPIError(w, r, domain.NewInvalidRequest(parse.MsgMissingFields), "")
		return nil, false
	}
	return obj, true
}
