package service

import "fmt"

// Messages for caller mistakes detected by the service itself.
const (
	MsgInvalidCoordinates = "longitude must be within [-180, 180] and latitude within [-90, 90]"
)

// RoadServiceError is a custom error type for road service errors.
type RoadServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for RoadServiceError.
func (e *RoadServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("road service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("road service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RoadServiceError) Unwrap() error {
	return e.Err
}

// NewRoadServiceError creates a new RoadServiceError.
func NewRoadServiceError(operation, message string, err error) *RoadServiceError {
	return &RoadServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
