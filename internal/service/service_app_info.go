package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
