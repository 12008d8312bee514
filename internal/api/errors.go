package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/roadnet-api/internal/api/shared"
	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/store"
)

// MsgUnexpectedError is the client message for every unmapped error.
const MsgUnexpectedError = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	if reqErr, ok := domain.AsRequestError(err); ok {
		switch reqErr.Kind {
		case domain.KindInvalidRequest, domain.KindNotFound:
			// A missing path between nodes has always been reported as a
			// bad request; clients depend on it.
			return http.StatusBadRequest
		}
	}

	switch {
	case errors.Is(err, shared.ErrInvalidJSON):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNodeNotFound),
		errors.Is(err, store.ErrLinkNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Request errors carry messages written for the
// client and are returned verbatim.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedError
	}

	if reqErr, ok := domain.AsRequestError(err); ok {
		return reqErr.Message
	}

	switch {
	case errors.Is(err, shared.ErrInvalidJSON):
		return "Invalid request format"
	case errors.Is(err, store.ErrNodeNotFound):
		return "Node not found"
	case errors.Is(err, store.ErrLinkNotFound):
		return "Link not found"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"
	default:
		return MsgUnexpectedError
	}
}

// HandleAPIError writes the error response for err. When message is empty
// the safe message for err is used.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
