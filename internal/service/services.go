package service

import (
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

type Services struct {
	IdentityService IdentityService
	TokenIssuer     TokenIssuer
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		IdentityService: NewIdentityService(storages.UserRepository, cfg, utils.NewUUIDGenerator(), logger),
		TokenIssuer:     NewTokenIssuer(cfg, logger),
		AppInfoService:  appInfoService,
	}, nil
}
