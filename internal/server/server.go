package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/handler"
	"github.com/MKhiriev/go-photo-album/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownOnce sync.Once
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating gRPC server: %w", err)
		}
		s.gRPCServer = grpcSrv
	}

	if len(s.transports()) == 0 {
		return nil, errNoTransports
	}

	return s, nil
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Str("func", "server.RunServer").Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, t := range s.transports() {
			s.logger.Info().Str("transport", t.name()).Msg("shutting down")
			t.shutdown()
		}
	})
}

func (s *server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// a stop signal or the first failing transport stops the rest
	go func() {
		<-gctx.Done()
		s.Shutdown()
	}()

	for _, t := range s.transports() {
		s.logger.Info().Str("transport", t.name()).Msg("launching")
		g.Go(func() error {
			if err := t.serve(); err != nil {
				return fmt.Errorf("%s: %w", t.name(), err)
			}
			return nil
		})
	}

	err := g.Wait()
	stop()
	s.Shutdown()
	if err != nil {
		return err
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}
