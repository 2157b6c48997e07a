// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorResponse is the JSON body of every failed API call. Kind is a stable,
// locale independent identifier; Error is the localized message.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}

// AuthResponse is returned after a successful profile exchange.
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User SessionUser `json:"user"`
}

// LogoutResponse is returned by POST /api/auth/logout.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AlbumsResponse is returned by GET /api/albums.
type AlbumsResponse struct {
	Albums []Album `json:"albums"`
}

// AlbumResponse is returned when a single album is created or ensured.
type AlbumResponse struct {
	Album   Album  `json:"album"`
	Message string `json:"message,omitempty"`
}

// PhotosResponse is returned by GET /api/albums/{albumId}/photos.
type PhotosResponse struct {
	Photos []Photo `json:"photos"`
}

// EnsureResult tells whether an idempotent create found or created the album.
type EnsureResult struct {
	Album   Album
	Photos  []Photo
	Created bool
}
