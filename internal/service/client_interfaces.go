package service

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-photo-album/models"
)

// ClientAlbumService defines the client-side contract for the albums of the
// signed in user. The demo user is served from local storage, everyone else
// through the server adapter.
type ClientAlbumService interface {
	// ListAlbums returns the albums of the signed in user.
	ListAlbums(ctx context.Context) ([]models.Album, error)

	// CreateAlbum creates an empty album. An empty description is omitted.
	CreateAlbum(ctx context.Context, title, description string) (models.Album, error)

	// EnsureDefaultAlbum returns the default album, creating it on first use.
	// created reports whether this call created it.
	EnsureDefaultAlbum(ctx context.Context) (album models.Album, created bool, err error)
}

// UploadFile is one image picked for upload.
type UploadFile struct {
	// Name is the file name stored with the photo.
	Name string
	// Open returns the raw image. It is called once, from a worker goroutine.
	Open func() (io.ReadCloser, error)
}

// UploadFromPath returns an UploadFile reading the file at path.
func UploadFromPath(path string) UploadFile {
	return UploadFile{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// ClientPhotoService defines the client-side contract for photos. Uploaded
// photos are kept in the local photo store of the album; the photos served
// by the backend are merged in front of them.
type ClientPhotoService interface {
	// List returns every photo of the album in display order.
	List(ctx context.Context, albumID string) ([]models.Photo, error)

	// Upload compresses files in parallel and appends them to the album.
	// A file that cannot be decoded aborts the whole batch and nothing is
	// written.
	Upload(ctx context.Context, albumID string, files []UploadFile) ([]models.Photo, error)

	// Reorder renumbers photos in the given order and persists the uploaded
	// ones.
	Reorder(ctx context.Context, albumID string, photos []models.Photo) ([]models.Photo, error)

	// Delete removes photoID from photos and persists the uploaded photos
	// that remain.
	Delete(ctx context.Context, albumID string, photos []models.Photo, photoID string) ([]models.Photo, error)
}

// ClientSlideshowService defines the client-side contract for per-album
// slideshow settings.
type ClientSlideshowService interface {
	// Settings returns the stored settings of the album or the defaults.
	Settings(ctx context.Context, albumID string) (models.SlideshowSettings, error)

	// SaveSettings validates and stores settings.
	SaveSettings(ctx context.Context, settings models.SlideshowSettings) error
}
