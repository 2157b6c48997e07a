package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/validators"
	"github.com/MKhiriev/go-photo-album/models"
)

type clientSlideshowService struct {
	settings  *store.SlideshowStore
	validator validators.Validator
}

func NewClientSlideshowService(settings *store.SlideshowStore, validator validators.Validator) ClientSlideshowService {
	return &clientSlideshowService{settings: settings, validator: validator}
}

func (s *clientSlideshowService) Settings(ctx context.Context, albumID string) (models.SlideshowSettings, error) {
	return s.settings.Load(ctx, albumID)
}

func (s *clientSlideshowService) SaveSettings(ctx context.Context, settings models.SlideshowSettings) error {
	if settings.AlbumID == "" {
		return fmt.Errorf("%w: no album", ErrValidationInvalidSetting)
	}
	if err := s.validator.Validate(ctx, settings); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationInvalidSetting, err)
	}
	return s.settings.Save(ctx, settings)
}
