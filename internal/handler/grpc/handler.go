package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported by the gRPC health endpoint next to
// the overall ("") status.
const ServiceName = "go-session-auth"

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 protocol. The reported status
// follows the result of the last database ping.
type Handler struct {
	health *health.Server
	db     Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil db makes the handler report
// SERVING unconditionally.
func NewHandler(db Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		db:     db,
		logger: logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh pings the database once and publishes the outcome.
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Err(err).Msg("database ping failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Watch refreshes the health status every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	h.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

// Shutdown switches every service to NOT_SERVING so that clients stop
// routing to this instance while it drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
