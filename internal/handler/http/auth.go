package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
	"github.com/MKhiriev/go-catalog-admin/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(w, r, &credentials); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, "", invalidBody(err))
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, "", err)
		return
	}

	log.Debug().Int64("id", session.User.UserID).Str("role", session.User.Role).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+session.Token)
	utils.WriteJSON(w, session, http.StatusOK)
}
