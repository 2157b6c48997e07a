package tui

import "github.com/MKhiriev/go-photo-album/models"

type loggedInMsg struct {
	user models.SessionUser
	err  error
}

type albumsLoadedMsg struct {
	albums []models.Album
	err    error
}

type albumCreatedMsg struct {
	album models.Album
	err   error
}

type defaultAlbumMsg struct {
	album   models.Album
	created bool
	err     error
}

type photosLoadedMsg struct {
	albumID string
	photos  []models.Photo
	err     error
}

// photosChangedMsg carries the album photos after a reorder or a delete.
type photosChangedMsg struct {
	photos []models.Photo
	status string
	err    error
}

type uploadedMsg struct {
	photos []models.Photo
	err    error
}

type settingsLoadedMsg struct {
	settings models.SlideshowSettings
	err      error
}

type settingsSavedMsg struct {
	err error
}

type usageLoadedMsg struct {
	usage models.StorageUsage
	err   error
}

type localDataClearedMsg struct {
	removed int
	err     error
}

// playerTickMsg advances the slideshow. seq drops ticks of a stopped run.
type playerTickMsg struct {
	seq int
}

// failedMsg reports an error that does not change any screen.
type failedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
