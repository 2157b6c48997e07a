package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-album/models"
)

// userAlbumsKey holds the JSON list of locally stored albums.
const userAlbumsKey = "user_albums"

// AlbumIndex is the list of albums kept in local storage.
type AlbumIndex struct {
	kv KV
}

func NewAlbumIndex(kv KV) *AlbumIndex {
	return &AlbumIndex{kv: kv}
}

// List returns the indexed albums. A missing index is an empty list.
func (i *AlbumIndex) List(ctx context.Context) ([]models.Album, error) {
	value, err := i.kv.Get(ctx, userAlbumsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.Album{}, nil
	}
	if err != nil {
		return nil, err
	}

	albums := make([]models.Album, 0)
	if err := json.Unmarshal([]byte(value), &albums); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedData, err)
	}
	if albums == nil {
		albums = []models.Album{}
	}
	return albums, nil
}

// Save overwrites the index.
func (i *AlbumIndex) Save(ctx context.Context, albums []models.Album) error {
	if albums == nil {
		albums = []models.Album{}
	}
	data, err := json.Marshal(albums)
	if err != nil {
		return fmt.Errorf("error encoding albums: %w", err)
	}
	return i.kv.Set(ctx, userAlbumsKey, string(data))
}

// Put inserts album at the front of the index or replaces the entry with the
// same id in place.
func (i *AlbumIndex) Put(ctx context.Context, album models.Album) error {
	albums, err := i.List(ctx)
	if err != nil {
		return err
	}

	for idx := range albums {
		if albums[idx].ID == album.ID {
			albums[idx] = album
			return i.Save(ctx, albums)
		}
	}

	return i.Save(ctx, append([]models.Album{album}, albums...))
}

// Find returns the indexed album with albumID or [ErrAlbumNotFound].
func (i *AlbumIndex) Find(ctx context.Context, albumID string) (models.Album, error) {
	albums, err := i.List(ctx)
	if err != nil {
		return models.Album{}, err
	}
	for _, a := range albums {
		if a.ID == albumID {
			return a, nil
		}
	}
	return models.Album{}, ErrAlbumNotFound
}
