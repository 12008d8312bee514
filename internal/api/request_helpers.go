package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/roadnet-api/internal/domain"
)

// getPathInt64 extracts an integer path parameter.
// A missing or non-integer value is reported as an invalid request.
func getPathInt64(r *http.Request, paramName string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil {
		return 0, domain.NewInvalidRequest(paramName + " must be an integer")
	}
	return value, nil
}

// getPathFloat64 extracts a decimal path parameter such as a longitude.
func getPathFloat64(r *http.Request, paramName string) (float64, error) {
	value, err := strconv.ParseFloat(chi.URLParam(r, paramName), 64)
	if err != nil {
		return 0, domain.NewInvalidRequest(paramName + " must be a number")
	}
	return value, nil
}

// getPathString extracts a required string path parameter.
func getPathString(r *http.Request, paramName string) (string, error) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		return "", domain.NewInvalidRequest(paramName + " is required")
	}
	return value, nil
}
