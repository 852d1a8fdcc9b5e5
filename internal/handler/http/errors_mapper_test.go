package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/resource"
	"github.com/MKhiriev/go-catalog-admin/internal/service"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &resource.ValidationError{Field: "name", Rule: "is required"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create: %w", &resource.ValidationError{Field: "price", Rule: "must be a number"}), http.StatusBadRequest},
		{"empty update", resource.ErrEmptyUpdate, http.StatusBadRequest},
		{"duplicate", &resource.ConflictError{Kind: resource.ConflictDuplicate}, http.StatusBadRequest},
		{"referenced", &resource.ConflictError{Kind: resource.ConflictReferenced}, http.StatusConflict},
		{"unique backstop", &resource.ConflictError{Kind: resource.ConflictConstraint}, http.StatusConflict},
		{"not found", resource.ErrNotFound, http.StatusNotFound},
		{"storage", fmt.Errorf("%w: insert: %w", resource.ErrStorage, errors.New("boom")), http.StatusInternalServerError},
		{"missing credentials", service.ErrMissingCredentials, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"credential storage", service.ErrStorageUnavailable, http.StatusInternalServerError},
		{"empty auth header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{"invalid JSON", ErrInvalidJSON, http.StatusBadRequest},
		{"oversized body", utils.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown", errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_ServerFailureIsLoggedNotExposed(t *testing.T) {
	var logBuf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req = req.WithContext(logger.NewWriterLogger(&logBuf, "test").WithContext(req.Context()))
	rr := httptest.NewRecorder()

	writeError(rr, req, "category", fmt.Errorf("%w: list: %w", resource.ErrStorage, errors.New("table categories is locked")))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
	assert.Contains(t, logBuf.String(), "table categories is locked")
}

func TestWriteError_StripsWrappingContext(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodPut, "/api/users/1", nil))
	rr := httptest.NewRecorder()

	writeError(rr, req, "", fmt.Errorf("update users: %w", resource.ErrEmptyUpdate))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"no valid fields to update"}`, rr.Body.String())
}

func TestWriteError_NotFoundWithoutEntity(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rr := httptest.NewRecorder()

	writeError(rr, req, "", resource.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"record not found"}`, rr.Body.String())
}
