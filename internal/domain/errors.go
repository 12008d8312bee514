// Package domain defines the core road-network entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidRequest is the sentinel wrapped by every RequestError of kind
	// KindInvalidRequest. Use errors.Is to detect caller-input failures.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is the sentinel wrapped by every RequestError of kind
	// KindNotFound, e.g. when no link exists between two nodes.
	ErrNotFound = errors.New("not found")

	// ErrMalformedRow is returned when a row coming from the query layer
	// cannot be translated (for example, a geometry column that is not JSON).
	// This indicates a schema problem, not bad user input.
	ErrMalformedRow = errors.New("malformed row")

	// ErrMalformedAggregate is returned when the aggregate text produced by
	// get_links_btwn_nodes does not follow the expected record grammar.
	ErrMalformedAggregate = errors.New("malformed aggregate result")
)

// ErrorKind classifies a RequestError.
type ErrorKind int

const (
	// KindInvalidRequest marks a caller-input validation failure.
	KindInvalidRequest ErrorKind = iota + 1
	// KindNotFound marks a query that legitimately produced no result.
	KindNotFound
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// RequestError carries a human-readable message that is safe to return to
// the client verbatim, together with its kind.
type RequestError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel matching the error kind so callers can use errors.Is.
func (e *RequestError) Unwrap() error {
	switch e.Kind {
	case KindInvalidRequest:
		return ErrInvalidRequest
	case KindNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// NewInvalidRequest creates a RequestError of kind KindInvalidRequest.
func NewInvalidRequest(message string) *RequestError {
	return &RequestError{Kind: KindInvalidRequest, Message: message}
}

// NewNotFound creates a RequestError of kind KindNotFound.
func NewNotFound(message string) *RequestError {
	return &RequestError{Kind: KindNotFound, Message: message}
}

// AsRequestError extracts a RequestError from the error chain.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
