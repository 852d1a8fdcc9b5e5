package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnknownCollection   = errors.New("unknown collection")
)

// APIError is a non-2xx answer of the admin API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the "error" member of the body, or the status text.
	Message string

	// Field names the offending field of a validation failure, if any.
	Field string

	kind error
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("http %d: %s (field %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel matching the status code, or nil.
func (e *APIError) Unwrap() error {
	return e.kind
}
