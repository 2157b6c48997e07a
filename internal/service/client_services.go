package service

import (
	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/imaging"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/validators"
	"github.com/MKhiriev/go-photo-album/internal/workers"
)

type ClientServices struct {
	Session          *ClientSessionManager
	AlbumService     ClientAlbumService
	PhotoService     ClientPhotoService
	SlideshowService ClientSlideshowService
	StorageUsage     *StorageUsageMonitor
	AuthCheckJob     *workers.PeriodicJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	validator := validators.NewAlbumValidator()

	session := NewClientSessionManager(storages.Auth, serverAdapter, cfg.App.DemoUserID, logger)

	// The demo user never reaches the server; its albums go through the same
	// album service the server runs, backed by the local repository only.
	local := NewAlbumService(nil, storages.Albums, NewBackendResolver(cfg.App.DemoUserID),
		validator, validators.NewSanitizer(), logger)

	return &ClientServices{
		Session:          session,
		AlbumService:     NewClientAlbumService(session, serverAdapter, local, logger),
		PhotoService:     NewClientPhotoService(session, serverAdapter, local, storages.Photos, imaging.NewCompressor(), logger),
		SlideshowService: NewClientSlideshowService(storages.Slideshow, validator),
		StorageUsage:     NewStorageUsageMonitor(storages.Persistent, storages.Session, logger),
		AuthCheckJob:     session.AuthCheckJob(cfg.Workers.AuthCheckInterval),
	}
}
