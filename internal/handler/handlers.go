package handler

import (
	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-session-auth/internal/handler/http"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a transport handler for every address configured in
// cfg. db may be nil, which disables the database health checks.
func NewHandlers(services *service.Services, validator validators.RequestValidator, sessions session.Store, db http.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		opts := []http.Option{http.WithRequestTimeout(cfg.RequestTimeout)}
		if db != nil {
			opts = append(opts, http.WithPinger(db))
		}
		handlers.HTTP = http.NewHandler(services, validator, sessions, logger, opts...)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(db, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
