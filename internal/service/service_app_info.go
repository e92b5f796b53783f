package service

import (
	"context"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("app info service created")

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
