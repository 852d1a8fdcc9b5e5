package service

import (
	"github.com/MKhiriev/go-catalog-admin/internal/config"
	"github.com/MKhiriev/go-catalog-admin/internal/crypto"
	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/resource"
	"github.com/MKhiriev/go-catalog-admin/internal/store"
	"github.com/MKhiriev/go-catalog-admin/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService

	Categories resource.Mutator
	Products   resource.Mutator
	Users      resource.Mutator
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, info models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		AppInfoService: NewAppInfoService(info, logger),
		Categories:     NewResourceAuditService().Wrap(resource.NewMutator(resource.CategorySchema(), storages.Gateway, logger)),
		Products:       NewResourceAuditService().Wrap(resource.NewMutator(resource.ProductSchema(), storages.Gateway, logger)),
		Users:          NewResourceAuditService().Wrap(resource.NewMutator(resource.UserSchema(hasher), storages.Gateway, logger)),
	}
}

// Resources returns the configured entity mutators keyed by their route
// segment. Nil mutators are left out.
func (s *Services) Resources() map[string]resource.Mutator {
	resources := make(map[string]resource.Mutator, 3)
	for segment, mutator := range map[string]resource.Mutator{
		"categories": s.Categories,
		"products":   s.Products,
		"users":      s.Users,
	} {
		if mutator != nil {
			resources[segment] = mutator
		}
	}
	return resources
}
