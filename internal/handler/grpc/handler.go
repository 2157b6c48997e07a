// Package grpc exposes the standard gRPC health service of the photo album
// server. Its serving status follows the database readiness reported by
// [service.HealthService].
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/workers"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "photoalbum.v1.Albums"

const readinessInterval = 15 * time.Second

// Handler is the root gRPC transport handler.
//
// It owns the health server and keeps its status in sync with the service
// layer. A handler instance is created once at startup and shared by the
// gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until the first readiness check passes.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// ReadinessJob returns a job that re-checks readiness on every tick.
func (h *Handler) ReadinessJob() *workers.PeriodicJob {
	return workers.NewPeriodicJob("grpc-readiness", readinessInterval, h.CheckReadiness, h.logger)
}

// CheckReadiness asks the health service once and publishes the outcome.
// The returned error is the readiness failure, if any.
func (h *Handler) CheckReadiness(ctx context.Context) error {
	if err := h.services.HealthService.Ready(ctx); err != nil {
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Shutdown marks every service NOT_SERVING and rejects later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
