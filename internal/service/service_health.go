package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/models"
)

// Pinger is anything that can tell whether its backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger     Pinger
	appVersion string
	now        func() time.Time

	logger *logger.Logger
}

func NewHealthService(pinger Pinger, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:     pinger,
		appVersion: cfg.Version,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *healthService) Check(_ context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:    app.MsgHealthOK,
		Timestamp: s.now().UTC(),
		Version:   s.appVersion,
	}
}

func (s *healthService) Ready(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.Ping(ctx)
}
