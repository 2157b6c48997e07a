// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateAlbumRequest is the body of POST /api/albums.
type CreateAlbumRequest struct {
	UserID       string  `json:"userId"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
}

// ToAlbum converts the request into an album with zero photos.
func (r CreateAlbumRequest) ToAlbum() Album {
	return Album{
		UserID:       r.UserID,
		Title:        r.Title,
		Description:  r.Description,
		ThumbnailURL: r.ThumbnailURL,
	}
}

// EnsureDefaultAlbumRequest is the body of POST /api/albums/default.
type EnsureDefaultAlbumRequest struct {
	UserID string `json:"userId"`
}

// PlatformLoginRequest is the body of POST /api/auth/liff.
type PlatformLoginRequest struct {
	User PlatformProfile `json:"user"`
}
