package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	myGRPC "github.com/MKhiriev/go-session-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-session-auth/internal/logger"

	"google.golang.org/grpc"
)

// healthRefreshInterval is how often the gRPC health status is re-evaluated.
const healthRefreshInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	watchCtx  context.Context
	stopWatch context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	watchCtx, stopWatch := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		watchCtx:        watchCtx,
		stopWatch:       stopWatch,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.handler.Watch(g.watchCtx, healthRefreshInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopWatch()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
