package handler

import (
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/crypto"
	"github.com/MKhiriev/go-photo-album/internal/handler/grpc"
	"github.com/MKhiriev/go-photo-album/internal/handler/http"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, keyChain crypto.KeyChainService, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		h, err := http.NewHandler(services, keyChain, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating HTTP handler: %w", err)
		}
		handlers.HTTP = h
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransportConfigured
	}

	return handlers, nil
}
