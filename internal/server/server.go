package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/handler"
	"github.com/MKhiriev/go-session-auth/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating gRPC server: %w", err)
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer starts every created server and blocks until SIGTERM, SIGINT or
// SIGQUIT is received, then shuts them down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run launches the servers and shuts them down once ctx is done.
func (s *server) run(ctx context.Context) {
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()
	s.Shutdown()

	s.logger.Info().Msg("server Shutdown gracefully")
}
