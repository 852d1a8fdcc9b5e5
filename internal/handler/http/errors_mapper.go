package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/resource"
	"github.com/MKhiriev/go-catalog-admin/internal/service"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
)

var errorStatusMap = map[error]int{
	resource.ErrValidation:  http.StatusBadRequest,
	resource.ErrEmptyUpdate: http.StatusBadRequest,
	resource.ErrConflict:    http.StatusConflict,
	resource.ErrNotFound:    http.StatusNotFound,
	resource.ErrStorage:     http.StatusInternalServerError,

	service.ErrMissingCredentials:      http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrStorageUnavailable:      http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,

	utils.ErrBodyTooLarge: http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	var conflict *resource.ConflictError
	if errors.As(err, &conflict) && conflict.Kind == resource.ConflictDuplicate {
		// a duplicate caught before the write is reported as bad input
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and writes the JSON error body. Server-side
// failures are logged with their detail and answered with the status text
// only. entity names the resource for not-found messages and may be empty.
func writeError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteError(w, status, http.StatusText(status), "")
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")

	var (
		validationErr *resource.ValidationError
		conflict      *resource.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.WriteError(w, status, validationErr.Error(), validationErr.Field)
	case errors.As(err, &conflict):
		utils.WriteError(w, status, conflict.Error(), conflict.Field)
	case errors.Is(err, resource.ErrNotFound) && entity != "":
		utils.WriteError(w, status, entity+" not found", "")
	default:
		utils.WriteError(w, status, rootMessage(err), "")
	}
}

// rootMessage returns the text of the innermost sentinel so that wrapping
// context added by lower layers does not leak into responses.
func rootMessage(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "")
}
