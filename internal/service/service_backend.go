package service

import "github.com/MKhiriev/go-photo-album/models"

// BackendResolver decides once per request which storage backend owns a
// user: the configured demo user lives in local storage, everyone else in
// the database.
type BackendResolver struct {
	demoUserID string
}

func NewBackendResolver(demoUserID string) BackendResolver {
	return BackendResolver{demoUserID: demoUserID}
}

// Backend returns the backend owning userID.
func (r BackendResolver) Backend(userID string) models.StorageBackend {
	if r.demoUserID != "" && userID == r.demoUserID {
		return models.LocalBackend
	}
	return models.RemoteBackend
}

// Source tags albumID with the backend of userID.
func (r BackendResolver) Source(userID, albumID string) models.AlbumSource {
	if r.Backend(userID) == models.LocalBackend {
		return models.Local(albumID)
	}
	return models.Remote(albumID)
}
