package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/handler"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/server"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-session-auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" || cfg.App.Version == "dev" {
		if v := buildInfo.BuildVersion(); v != "N/A" {
			cfg.App.Version = v
		}
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	validator, err := validators.NewRequestValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating request validator")
	}

	sessions, err := session.NewCookieStore(cfg.Cookie, cfg.App.TokenDuration)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session cookie store")
	}

	handlers, err := handler.NewHandlers(services, validator, sessions, storages.DB, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
