package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps the size of a request body read by DecodeJSON.
const MaxBodyBytes = 1 << 20

var (
	// ErrEmptyBody is returned by DecodeJSON when the request carries no body.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds
	// MaxBodyBytes.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrTrailingData is returned by DecodeJSON when the body holds more
	// than one JSON value.
	ErrTrailingData = errors.New("request body must hold a single JSON value")
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse] with the given status.
func WriteError(w http.ResponseWriter, statusCode int, message, field string) {
	_, _ = WriteJSON(w, ErrorResponse{Error: message, Field: field}, statusCode)
}

// DecodeJSON decodes the request body into dst. Numbers are decoded as
// [json.Number] so integer fields keep their exact value when dst is a map.
// An absent or empty body yields [ErrEmptyBody]. Bodies above MaxBodyBytes
// yield [ErrBodyTooLarge] and anything after the first value yields
// [ErrTrailingData].
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	decoder.UseNumber()

	if err := decoder.Decode(dst); err != nil {
		return decodeError(err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return decodeError(err)
		}
		return ErrTrailingData
	}

	return nil
}

func decodeError(err error) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	}
	return fmt.Errorf("error decoding request body: %w", err)
}
