package store

import (
	"context"

	"github.com/MKhiriev/go-photo-album/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users who signed in with the identity provider.
type UserRepository interface {
	// UpsertUser inserts the user on first login and refreshes the profile
	// and last_login_at afterwards.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLineID(ctx context.Context, lineUserID string) (models.User, error)
}

// AlbumRepository is implemented once per [models.StorageBackend].
type AlbumRepository interface {
	// ListAlbums returns the active albums of the user, newest update first.
	ListAlbums(ctx context.Context, userID string) ([]models.Album, error)
	// CreateAlbum stores a new empty album.
	CreateAlbum(ctx context.Context, album models.Album) (models.Album, error)
	// FindDefaultAlbum returns the user's default album or [ErrAlbumNotFound].
	FindDefaultAlbum(ctx context.Context, userID string) (models.Album, error)
	// CreateAlbumWithPhotos stores an album together with its photos.
	CreateAlbumWithPhotos(ctx context.Context, album models.Album, photos []models.Photo) (models.Album, error)
	// ListPhotos returns the photos of an album ordered by display order.
	ListPhotos(ctx context.Context, userID, albumID string) ([]models.Photo, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
