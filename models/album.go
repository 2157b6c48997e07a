// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Album is a named collection of photos owned by a single user.
//
// ID is the database id rendered as text for remote albums, or a local id
// (for example [DefaultAlbumID]) for albums kept in local storage.
// PhotoCount is denormalized and never recomputed transactionally.
type Album struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	PhotoCount   int       `json:"photo_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Album model.
func (a Album) TableName() string {
	return "albums"
}

// StorageBackend tells where the albums of a user live.
type StorageBackend int

const (
	// RemoteBackend keeps albums and photos in the relational database.
	RemoteBackend StorageBackend = iota
	// LocalBackend keeps albums and photos in local key/value storage.
	LocalBackend
)

func (b StorageBackend) String() string {
	switch b {
	case LocalBackend:
		return "local"
	default:
		return "remote"
	}
}

// AlbumSource identifies an album together with the backend that owns it.
// It is resolved once at the API boundary and passed down unchanged.
type AlbumSource struct {
	backend StorageBackend
	id      string
}

// Local returns the source of an album stored in local key/value storage.
func Local(albumID string) AlbumSource {
	return AlbumSource{backend: LocalBackend, id: albumID}
}

// Remote returns the source of an album stored in the relational database.
func Remote(albumID string) AlbumSource {
	return AlbumSource{backend: RemoteBackend, id: albumID}
}

// Backend returns the owning backend.
func (s AlbumSource) Backend() StorageBackend {
	return s.backend
}

// ID returns the backend-specific album id.
func (s AlbumSource) ID() string {
	return s.id
}

// IsLocal reports whether the album lives in local storage.
func (s AlbumSource) IsLocal() bool {
	return s.backend == LocalBackend
}

// PhotosKey returns the local storage key holding the album's photo list.
func (s AlbumSource) PhotosKey() string {
	return AlbumPhotosKey(s.id)
}

// AlbumPhotosKey returns the local storage key for the photos of albumID.
func AlbumPhotosKey(albumID string) string {
	return "album_" + albumID + "_photos"
}

// AlbumOrderKey returns the local storage key holding the photo IDs of
// albumID in the order chosen by the user.
func AlbumOrderKey(albumID string) string {
	return "album_" + albumID + "_order"
}
