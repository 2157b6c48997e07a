package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/crypto"
	"github.com/MKhiriev/go-photo-album/internal/handler"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/server"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("photo-album-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("local_driver", cfg.Storage.Local.Driver).
		Str("frontend_url", cfg.App.FrontendURL).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	provider := adapter.NewLineProvider(cfg.Line, cfg.Server, log)
	services := service.NewServices(storages, provider, *cfg, log)

	handlers, err := handler.NewHandlers(services, crypto.NewKeyChainService(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
