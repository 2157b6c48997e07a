// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/validators"
	"github.com/MKhiriev/go-photo-album/models"
)

// albumService routes every call to the repository of the backend that owns
// the user. The backend is resolved once from the user id and carried down
// as a [models.AlbumSource].
type albumService struct {
	remote   store.AlbumRepository
	local    store.AlbumRepository
	resolver BackendResolver

	validator validators.Validator
	sanitizer *validators.Sanitizer
	now       func() time.Time

	logger *logger.Logger
}

func NewAlbumService(
	remote, local store.AlbumRepository,
	resolver BackendResolver,
	validator validators.Validator,
	sanitizer *validators.Sanitizer,
	logger *logger.Logger,
) AlbumService {
	return &albumService{
		remote:    remote,
		local:     local,
		resolver:  resolver,
		validator: validator,
		sanitizer: sanitizer,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *albumService) repository(backend models.StorageBackend) store.AlbumRepository {
	if backend == models.LocalBackend {
		return s.local
	}
	return s.remote
}

// ListAlbums returns the albums of userID.
func (s *albumService) ListAlbums(ctx context.Context, userID string) ([]models.Album, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}

	albums, err := s.repository(s.resolver.Backend(userID)).ListAlbums(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing albums: %w", err)
	}
	return albums, nil
}

// CreateAlbum sanitizes and validates req, then stores an empty album.
func (s *albumService) CreateAlbum(ctx context.Context, req models.CreateAlbumRequest) (models.Album, error) {
	log := logger.FromContext(ctx)

	req = s.sanitizer.CreateAlbumRequest(req)
	if err := s.validateCreate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "albumService.CreateAlbum").Msg("invalid album request")
		return models.Album{}, err
	}

	backend := s.resolver.Backend(req.UserID)
	album, err := s.repository(backend).CreateAlbum(ctx, req.ToAlbum())
	if err != nil {
		log.Err(err).
			Str("func", "albumService.CreateAlbum").
			Str("backend", backend.String()).
			Msg("album creation ended with error")
		return models.Album{}, fmt.Errorf("album creation ended with error: %w", err)
	}

	return album, nil
}

func (s *albumService) validateCreate(ctx context.Context, req models.CreateAlbumRequest) error {
	err := s.validator.Validate(ctx, req)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrEmptyUserID):
		return ErrValidationNoUserID
	case errors.Is(err, validators.ErrEmptyTitle):
		return ErrValidationNoTitle
	default:
		return fmt.Errorf("%w: %w", ErrValidationInvalidAlbum, err)
	}
}

// EnsureDefaultAlbum returns the user's default album, creating it with the
// six baseline photos when it does not exist yet.
func (s *albumService) EnsureDefaultAlbum(ctx context.Context, userID string) (models.EnsureResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.EnsureResult{}, ErrValidationNoUserID
	}

	backend := s.resolver.Backend(userID)
	repo := s.repository(backend)

	existing, err := repo.FindDefaultAlbum(ctx, userID)
	if err == nil {
		return models.EnsureResult{Album: existing, Created: false}, nil
	}
	if !errors.Is(err, store.ErrAlbumNotFound) {
		return models.EnsureResult{}, fmt.Errorf("error looking up default album: %w", err)
	}

	photos := models.DefaultPhotos()
	album, err := repo.CreateAlbumWithPhotos(ctx, models.DefaultAlbum(userID, s.now()), photos)
	if err != nil {
		log.Err(err).
			Str("func", "albumService.EnsureDefaultAlbum").
			Str("backend", backend.String()).
			Msg("default album creation ended with error")
		return models.EnsureResult{}, fmt.Errorf("default album creation ended with error: %w", err)
	}

	log.Info().
		Str("func", "albumService.EnsureDefaultAlbum").
		Str("backend", backend.String()).
		Str("album_id", album.ID).
		Msg("default album created")

	return models.EnsureResult{Album: album, Photos: photos, Created: true}, nil
}

// ListPhotos returns the photos of an album in display order. The baseline
// photos of the local default album are always included.
func (s *albumService) ListPhotos(ctx context.Context, userID, albumID string) ([]models.Photo, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}

	source := s.resolver.Source(userID, albumID)
	photos, err := s.repository(source.Backend()).ListPhotos(ctx, userID, source.ID())
	if err != nil {
		return nil, fmt.Errorf("error listing photos: %w", err)
	}

	if source.IsLocal() && source.ID() == models.DefaultAlbumID {
		photos = models.MergePhotos(models.DefaultPhotos(), photos)
	}
	models.SortPhotos(photos)

	return photos, nil
}
