package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-photo-album/internal/config"
	myGRPC "github.com/MKhiriev/go-photo-album/internal/handler/grpc"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/workers"
)

type grpcServer struct {
	handler   *myGRPC.Handler
	readiness *workers.PeriodicJob

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	srv := grpc.NewServer()
	handler.Register(srv)

	return &grpcServer{
		handler:         handler,
		readiness:       handler.ReadinessJob(),
		server:          srv,
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) serve() error {
	ctx := context.Background()
	if err := g.handler.CheckReadiness(ctx); err != nil {
		g.logger.Warn().Err(err).Str("func", "grpcServer.serve").Msg("database is not ready yet")
	}
	g.readiness.Run(ctx)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	// GracefulStop makes Serve return nil
	return g.server.Serve(g.gRPCNetListener)
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.readiness.Stop()
	g.handler.Shutdown()
	g.server.GracefulStop()
	// Serve closes the listener itself; this covers a server that never ran
	_ = g.gRPCNetListener.Close()
}
