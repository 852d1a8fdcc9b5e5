package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-catalog-admin/internal/resource"
	"github.com/MKhiriev/go-catalog-admin/models"
)

// AuthService signs users in and verifies the session tokens it issued.
type AuthService interface {
	// Login checks creds against the active user with the same email and
	// returns a signed session token with the sanitized user.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// ParseToken verifies the signature, issuer and expiry of tokenString.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// MutatorWrapper defines middleware composition for resource.Mutator.
// Implementations wrap an existing Mutator to add behavior such as
// audit logging.
type MutatorWrapper interface {
	Wrap(resource.Mutator) resource.Mutator
}
