package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the token claims in the
// request context with [utils.WithClaims]. The request-scoped logger is
// enriched with the caller's id so that access and audit lines name the
// operator.
//
// A missing header, a header that is not "Bearer <token>" and any token the
// service rejects all yield 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, "", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, "", ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, r, "", err)
			return
		}

		ctx = log.With("user_id", token.UserID).Into(utils.WithClaims(ctx, token.Claims))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
