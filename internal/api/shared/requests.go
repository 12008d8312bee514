package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps the size of JSON request bodies.
const MaxBodyBytes = 1 << 20

// ErrInvalidJSON is returned when a request body is not a single JSON value.
var ErrInvalidJSON = errors.New("invalid JSON body")

// DecodeJSON decodes the request body into v. Numbers are kept as
// json.Number so integer ids survive without float rounding.
func DecodeJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(body) > MaxBodyBytes {
		return fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidJSON, MaxBodyBytes)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
	}
	return nil
}

// DecodeJSONBody decodes the request body into a generic JSON value:
// map[string]any for objects, []any for arrays, json.Number for numbers.
func DecodeJSONBody(r *http.Request) (any, error) {
	var body any
	if err := DecodeJSON(r, &body); err != nil {
		return nil, err
	}
	return body, nil
}
