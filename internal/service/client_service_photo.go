// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/imaging"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/utils"
	"github.com/MKhiriev/go-photo-album/models"
)

type clientPhotoService struct {
	session *ClientSessionManager
	adapter adapter.ServerAdapter
	local   AlbumService
	photos  *store.LocalPhotoStore

	compressor   *imaging.Compressor
	maxDimension int
	quality      float64
	parallelism  int
	now          func() time.Time
	ids          *utils.UUIDGenerator

	// albumLocks serializes the read-modify-write of one album's photo list.
	mu         sync.Mutex
	albumLocks map[string]*sync.Mutex

	logger *logger.Logger
}

func NewClientPhotoService(
	session *ClientSessionManager,
	serverAdapter adapter.ServerAdapter,
	local AlbumService,
	photos *store.LocalPhotoStore,
	compressor *imaging.Compressor,
	logger *logger.Logger,
) ClientPhotoService {
	return &clientPhotoService{
		session:      session,
		adapter:      serverAdapter,
		local:        local,
		photos:       photos,
		compressor:   compressor,
		maxDimension: imaging.DefaultMaxDimension,
		quality:      imaging.DefaultQuality,
		parallelism:  runtime.NumCPU(),
		now:          time.Now,
		ids:          utils.NewUUIDGenerator(),
		albumLocks:   make(map[string]*sync.Mutex),
		logger:       logger,
	}
}

func (s *clientPhotoService) albumLock(albumID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.albumLocks[albumID]
	if !ok {
		l = &sync.Mutex{}
		s.albumLocks[albumID] = l
	}
	return l
}

// List returns the album photos with the order saved by Reorder applied on
// top. Photos the order does not know yet go last.
func (s *clientPhotoService) List(ctx context.Context, albumID string) ([]models.Photo, error) {
	photos, err := s.listMerged(ctx, albumID)
	if err != nil {
		return nil, err
	}

	order, err := s.photos.LoadOrder(ctx, albumID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "clientPhotoService.List").
			Str("album_id", albumID).
			Msg("ignoring unreadable photo order")
		return photos, nil
	}
	if len(order) == 0 {
		return photos, nil
	}
	return models.ApplyOrder(photos, order), nil
}

func (s *clientPhotoService) listMerged(ctx context.Context, albumID string) ([]models.Photo, error) {
	user, ok := s.session.User()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	// Local albums keep uploads under the same key the repository reads.
	if s.session.IsDemoUser() {
		return s.local.ListPhotos(ctx, user.ID, albumID)
	}

	remote, err := s.adapter.ListPhotos(ctx, user.ID, albumID)
	if err != nil {
		return nil, fmt.Errorf("error listing photos on server: %w", mapAdapterError(err))
	}

	stored, err := s.photos.Load(ctx, models.AlbumPhotosKey(albumID))
	if err != nil {
		return nil, err
	}

	photos := models.MergePhotos(remote, stored)
	models.SortPhotos(photos)
	return photos, nil
}

func (s *clientPhotoService) Upload(ctx context.Context, albumID string, files []UploadFile) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	if len(files) == 0 {
		return nil, ErrNoPhotos
	}

	images := make([]imaging.Image, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.parallelism))
	for i, f := range files {
		g.Go(func() error {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("error opening %s: %w", f.Name, err)
			}
			defer rc.Close()

			img, err := s.compressor.Compress(gctx, rc, s.maxDimension, s.quality)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Err(err).
			Str("func", "clientPhotoService.Upload").
			Str("album_id", albumID).
			Int("files", len(files)).
			Msg("upload batch aborted")
		return nil, err
	}

	lock := s.albumLock(albumID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.List(ctx, albumID)
	if err != nil {
		return nil, err
	}

	key := models.AlbumPhotosKey(albumID)
	stored, err := s.photos.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	next := max(maxDisplayOrder(current), maxDisplayOrder(stored)) + 1
	now := s.now().UTC()

	uploaded := make([]models.Photo, len(images))
	for i, img := range images {
		uploaded[i] = models.Photo{
			ID:           s.ids.Generate(),
			AlbumID:      albumID,
			URL:          img.DataURI,
			Filename:     files[i].Name,
			FileSize:     img.Size,
			MimeType:     imaging.MimeType,
			Width:        img.Width,
			Height:       img.Height,
			DisplayOrder: next + i,
			UploadedAt:   &now,
		}
	}

	if err := s.photos.Save(ctx, key, append(stored, uploaded...)); err != nil {
		return nil, err
	}

	log.Info().
		Str("func", "clientPhotoService.Upload").
		Str("album_id", albumID).
		Int("photos", len(uploaded)).
		Msg("photos uploaded")

	return uploaded, nil
}

func (s *clientPhotoService) Reorder(ctx context.Context, albumID string, photos []models.Photo) ([]models.Photo, error) {
	reordered := slices.Clone(photos)
	for i := range reordered {
		reordered[i].DisplayOrder = i + 1
	}

	lock := s.albumLock(albumID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.photos.Save(ctx, models.AlbumPhotosKey(albumID), models.UploadedOnly(reordered)); err != nil {
		return nil, err
	}
	// Baseline and server photos are not written back, so their position
	// only survives through the saved order.
	if err := s.photos.SaveOrder(ctx, albumID, models.PhotoIDs(reordered)); err != nil {
		return nil, err
	}
	return reordered, nil
}

func (s *clientPhotoService) Delete(ctx context.Context, albumID string, photos []models.Photo, photoID string) ([]models.Photo, error) {
	idx := slices.IndexFunc(photos, func(p models.Photo) bool { return p.ID == photoID })
	if idx < 0 {
		return nil, ErrPhotoNotFound
	}
	remaining := slices.Delete(slices.Clone(photos), idx, idx+1)

	lock := s.albumLock(albumID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.photos.Save(ctx, models.AlbumPhotosKey(albumID), models.UploadedOnly(remaining)); err != nil {
		return nil, err
	}
	order, err := s.photos.LoadOrder(ctx, albumID)
	if err == nil && len(order) > 0 {
		if err := s.photos.SaveOrder(ctx, albumID, models.PhotoIDs(remaining)); err != nil {
			return nil, err
		}
	}
	return remaining, nil
}

func maxDisplayOrder(photos []models.Photo) int {
	m := 0
	for _, p := range photos {
		m = max(m, p.DisplayOrder)
	}
	return m
}
