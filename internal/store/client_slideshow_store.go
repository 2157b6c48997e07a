package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-album/models"
)

// SlideshowStore persists slideshow settings per album.
type SlideshowStore struct {
	kv KV
}

func NewSlideshowStore(kv KV) *SlideshowStore {
	return &SlideshowStore{kv: kv}
}

// Load returns the stored settings of albumID or the defaults when none were
// saved yet.
func (s *SlideshowStore) Load(ctx context.Context, albumID string) (models.SlideshowSettings, error) {
	value, err := s.kv.Get(ctx, models.SlideshowSettingsKey(albumID))
	if errors.Is(err, ErrKeyNotFound) {
		return models.DefaultSlideshowSettings(albumID), nil
	}
	if err != nil {
		return models.SlideshowSettings{}, err
	}

	settings := models.DefaultSlideshowSettings(albumID)
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return models.SlideshowSettings{}, fmt.Errorf("%w: %w", ErrCorruptedData, err)
	}
	settings.AlbumID = albumID
	return settings, nil
}

func (s *SlideshowStore) Save(ctx context.Context, settings models.SlideshowSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error encoding slideshow settings: %w", err)
	}
	return s.kv.Set(ctx, models.SlideshowSettingsKey(settings.AlbumID), string(data))
}
