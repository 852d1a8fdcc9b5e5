package store

import "github.com/MKhiriev/go-catalog-admin/internal/logger"

// Storages groups the persistence dependencies handed to the service layer.
type Storages struct {
	Gateway        Gateway
	UserRepository UserRepository
}

// NewStorages wires every repository on top of gateway.
func NewStorages(gateway Gateway, logger *logger.Logger) *Storages {
	return &Storages{
		Gateway:        gateway,
		UserRepository: NewUserRepository(gateway, logger),
	}
}
