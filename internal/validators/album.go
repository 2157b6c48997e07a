package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-photo-album/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID       = "user_id"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldThumbnailURL = "thumbnail_url"
	FieldSettings     = "settings"
)

// Length limits of album text, in characters.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 2000
)

type AlbumValidator struct{}

func NewAlbumValidator() Validator {
	return &AlbumValidator{}
}

func (v *AlbumValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAlbumRequest:
		return v.validateCreateAlbum(value, fields...)
	case *models.CreateAlbumRequest:
		return v.validateCreateAlbum(*value, fields...)

	case models.EnsureDefaultAlbumRequest:
		return v.validateUserID(value.UserID)
	case *models.EnsureDefaultAlbumRequest:
		return v.validateUserID(value.UserID)

	case models.PlatformProfile:
		return v.validateUserID(value.UserID)
	case *models.PlatformProfile:
		return v.validateUserID(value.UserID)

	case models.SlideshowSettings:
		return v.validateSettings(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *AlbumValidator) validateCreateAlbum(req models.CreateAlbumRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldDescription, FieldThumbnailURL}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if err := v.validateUserID(req.UserID); err != nil {
				return err
			}
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(req.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldDescription:
			if req.Description != nil && utf8.RuneCountInString(*req.Description) > MaxDescriptionLength {
				return ErrDescTooLong
			}
		case FieldThumbnailURL:
			if req.ThumbnailURL != nil && *req.ThumbnailURL != "" && !isThumbnailURL(*req.ThumbnailURL) {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AlbumValidator) validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrEmptyUserID
	}
	return nil
}

func (v *AlbumValidator) validateSettings(s models.SlideshowSettings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// isThumbnailURL accepts site-relative paths and absolute http(s) URLs.
func isThumbnailURL(raw string) bool {
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
