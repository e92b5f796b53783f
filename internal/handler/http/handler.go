package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/validators"
)

// Pinger reports whether the backing database is reachable.
// *store.DB satisfies it through the embedded *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	validator validators.RequestValidator
	identity  service.IdentityService
	tokens    service.TokenIssuer
	appInfo   service.AppInfoService
	sessions  session.Store
	db        Pinger

	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customises a [Handler] built by [NewHandler].
type Option func(*Handler)

// WithRequestTimeout bounds every routed request with chi's Timeout
// middleware. Zero leaves requests unbounded.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

// WithPinger enables the database check of the /healthz route.
func WithPinger(db Pinger) Option {
	return func(h *Handler) {
		h.db = db
	}
}

func NewHandler(services *service.Services, validator validators.RequestValidator, sessions session.Store, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		validator: validator,
		identity:  services.IdentityService,
		tokens:    services.TokenIssuer,
		appInfo:   services.AppInfoService,
		sessions:  sessions,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
