// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/models"
)

// localAlbumRepository is the [AlbumRepository] of the demo user. Albums are
// kept in the user_albums index and photos in a [LocalPhotoStore], both on
// top of the same [KV].
type localAlbumRepository struct {
	index  *AlbumIndex
	photos *LocalPhotoStore
	now    func() time.Time

	// serializes read-modify-write of the index
	mu     sync.Mutex
	logger *logger.Logger
}

// NewLocalAlbumRepository constructs the local [AlbumRepository] over kv.
func NewLocalAlbumRepository(kv KV, logger *logger.Logger) AlbumRepository {
	logger.Debug().Msg("creating local album repository")
	return &localAlbumRepository{
		index:  NewAlbumIndex(kv),
		photos: NewLocalPhotoStore(kv, logger),
		now:    time.Now,
		logger: logger,
	}
}

// ListAlbums returns the indexed albums. The default album is always listed
// first, even before it was created.
func (r *localAlbumRepository) ListAlbums(ctx context.Context, userID string) ([]models.Album, error) {
	albums, err := r.index.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localAlbumRepository.ListAlbums").
			Msg("failed to read album index")
		return nil, err
	}

	for _, a := range albums {
		if a.ID == models.DefaultAlbumID {
			return albums, nil
		}
	}

	return append([]models.Album{models.DefaultAlbum(userID, r.now())}, albums...), nil
}

func (r *localAlbumRepository) CreateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	album.ID = uuid.NewString()
	album.PhotoCount = 0
	album.CreatedAt = now
	album.UpdatedAt = now

	if err := r.index.Put(ctx, album); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localAlbumRepository.CreateAlbum").
			Str("title", album.Title).
			Msg("failed to save album")
		return models.Album{}, err
	}
	return album, nil
}

// FindDefaultAlbum looks the default album up by its reserved id.
func (r *localAlbumRepository) FindDefaultAlbum(ctx context.Context, _ string) (models.Album, error) {
	return r.index.Find(ctx, models.DefaultAlbumID)
}

// CreateAlbumWithPhotos writes the photos first so that an indexed album
// never points at a missing photo list.
func (r *localAlbumRepository) CreateAlbumWithPhotos(ctx context.Context, album models.Album, photos []models.Photo) (models.Album, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if album.ID == "" {
		album.ID = uuid.NewString()
	}
	album.PhotoCount = len(photos)

	if err := r.photos.Save(ctx, models.AlbumPhotosKey(album.ID), photos); err != nil {
		return models.Album{}, err
	}
	if err := r.index.Put(ctx, album); err != nil {
		return models.Album{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "localAlbumRepository.CreateAlbumWithPhotos").
		Str("album_id", album.ID).
		Int("photos", len(photos)).
		Msg("album stored locally")
	return album, nil
}

// ListPhotos returns the stored photos of albumID sorted by display order.
func (r *localAlbumRepository) ListPhotos(ctx context.Context, _ string, albumID string) ([]models.Photo, error) {
	photos, err := r.photos.Load(ctx, models.AlbumPhotosKey(albumID))
	if err != nil {
		return nil, err
	}
	models.SortPhotos(photos)
	return photos, nil
}
