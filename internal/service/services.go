package service

import (
	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/validators"
)

type Services struct {
	AuthService   AuthService
	OAuthService  OAuthService
	AlbumService  AlbumService
	HealthService HealthService
}

func NewServices(storages *store.Storages, provider adapter.IdentityProvider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	resolver := NewBackendResolver(cfg.App.DemoUserID)
	authService := NewAuthService(storages.UserRepository, resolver, cfg.App, logger)

	return &Services{
		AuthService:  authService,
		OAuthService: NewOAuthService(provider, authService, logger),
		AlbumService: NewAlbumService(
			storages.RemoteAlbums,
			storages.LocalAlbums,
			resolver,
			validators.NewAlbumValidator(),
			validators.NewSanitizer(),
			logger,
		),
		HealthService: NewHealthService(storages, cfg.App, logger),
	}
}
