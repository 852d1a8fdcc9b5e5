package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/mock"
	"github.com/MKhiriev/go-catalog-admin/internal/service"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
	"github.com/MKhiriev/go-catalog-admin/models"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		traceIDs: utils.NewUUIDGenerator(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func failIfCalled(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	})
}

// ---- Rejections ----

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantParse bool
		wantError string
	}{
		{name: "no header", header: "", wantError: ErrEmptyAuthorizationHeader.Error()},
		{name: "token without scheme", header: "abc.def.ghi", wantError: ErrInvalidAuthorizationHeader.Error()},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantError: ErrInvalidAuthorizationHeader.Error()},
		{name: "bearer without token", header: "Bearer ", wantError: ErrInvalidAuthorizationHeader.Error()},
		{name: "extra parts", header: "Bearer a b", wantError: ErrInvalidAuthorizationHeader.Error()},
		{name: "token rejected by service", header: "Bearer expired", wantParse: true, wantError: service.ErrTokenIsExpiredOrInvalid.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := mock.NewMockAuthService(ctrl)
			if tt.wantParse {
				authSvc.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			}

			rr := executeAuth(newHandlerWithAuthService(authSvc), tt.header, failIfCalled(t))

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantError, decodeErrorBody(t, rr).Error)
		})
	}
}

// ---- Success ----

func TestAuth_StoresClaimsInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)

	claims := models.Claims{
		Email:            "ann@example.com",
		Role:             models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "4"},
	}
	authSvc.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{Claims: claims, UserID: 4}, nil)

	var (
		got    models.Claims
		found  bool
		called bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, found = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(newHandlerWithAuthService(authSvc), "Bearer good", next)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, called)
	require.True(t, found)
	assert.Equal(t, claims, got)
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: 1}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := executeAuth(newHandlerWithAuthService(authSvc), "bearer good", next)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
