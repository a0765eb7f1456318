package service

import (
	"context"

	"github.com/MKhiriev/what-to-cook/internal/config"
	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version together with the linker-injected
// build metadata.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

// GetAppVersion returns ErrVersionIsNotSpecified when neither the
// configuration nor the build set a version.
func (s *appInfoService) GetAppVersion(ctx context.Context) (models.VersionResponse, error) {
	version := s.appVersion
	if version == "" {
		version = s.buildInfo.BuildVersion()
	}
	if version == "" {
		logger.FromContext(ctx).Error().Msg("application version is not configured")
		return models.VersionResponse{}, ErrVersionIsNotSpecified
	}

	return models.VersionResponse{
		Version:     version,
		BuildDate:   s.buildInfo.BuildDate(),
		BuildCommit: s.buildInfo.BuildCommit(),
	}, nil
}
