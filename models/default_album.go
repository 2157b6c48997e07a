// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Reserved values of the "beach memories" album created for every new user.
const (
	DefaultAlbumID           = "default-beach-album"
	DefaultAlbumTitle        = "ビーチの思い出"
	DefaultAlbumDescription  = "美しいビーチでの楽しい時間を記録したアルバムです。"
	DefaultAlbumThumbnailURL = "/beach-sunset.png"
)

var defaultPhotos = []Photo{
	{Filename: "beach-sunset.png", FileSize: 1024000, MimeType: "image/png", Width: 1920, Height: 1080, DisplayOrder: 1},
	{Filename: "beach-umbrella.jpg", FileSize: 856000, MimeType: "image/jpeg", Width: 1920, Height: 1280, DisplayOrder: 2},
	{Filename: "summer-beach-family.jpg", FileSize: 1200000, MimeType: "image/jpeg", Width: 1920, Height: 1080, DisplayOrder: 3},
	{Filename: "sandcastle.jpg", FileSize: 950000, MimeType: "image/jpeg", Width: 1920, Height: 1280, DisplayOrder: 4},
	{Filename: "seashells.jpg", FileSize: 780000, MimeType: "image/jpeg", Width: 1920, Height: 1080, DisplayOrder: 5},
	{Filename: "ocean-waves.png", FileSize: 1100000, MimeType: "image/png", Width: 1920, Height: 1080, DisplayOrder: 6},
}

// DefaultPhotos returns a fresh copy of the six baseline photos of the
// default album. File paths point at static assets.
func DefaultPhotos() []Photo {
	photos := make([]Photo, len(defaultPhotos))
	for i, p := range defaultPhotos {
		p.ID = DefaultAlbumID + "-" + p.Filename
		p.AlbumID = DefaultAlbumID
		p.FilePath = "/" + p.Filename
		photos[i] = p
	}
	return photos
}

// DefaultAlbum returns the default album for userID, stamped with now.
func DefaultAlbum(userID string, now time.Time) Album {
	description := DefaultAlbumDescription
	thumbnail := DefaultAlbumThumbnailURL
	return Album{
		ID:           DefaultAlbumID,
		UserID:       userID,
		Title:        DefaultAlbumTitle,
		Description:  &description,
		ThumbnailURL: &thumbnail,
		PhotoCount:   len(defaultPhotos),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
