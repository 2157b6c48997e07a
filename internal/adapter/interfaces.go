// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of the photo album.
//
// [ServerAdapter] is used by the terminal client to talk to the API server
// over HTTP. [IdentityProvider] is used by the server to run the LINE Login
// authorization-code flow.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// wraps one of the sentinels in errors.go, so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401) and [KindOf] for the server error kind.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-photo-album/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines the calls the client makes to the API server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// LoginWithProfile exchanges a platform profile for a session token
	// (POST /api/auth/liff). The returned token is also stored via SetToken.
	LoginWithProfile(ctx context.Context, profile models.PlatformProfile) (models.AuthResponse, error)

	// Me returns the user embedded in the current token (GET /api/auth/me).
	Me(ctx context.Context) (models.SessionUser, error)

	// Logout notifies the server that token is no longer used
	// (POST /api/auth/logout).
	Logout(ctx context.Context, token string) error

	ListAlbums(ctx context.Context, userID string) ([]models.Album, error)
	CreateAlbum(ctx context.Context, req models.CreateAlbumRequest) (models.Album, error)

	// EnsureDefaultAlbum reports created=true when the server answered 201.
	EnsureDefaultAlbum(ctx context.Context, userID string) (album models.Album, created bool, err error)

	ListPhotos(ctx context.Context, userID, albumID string) ([]models.Photo, error)

	Health(ctx context.Context) (models.HealthResponse, error)
}

// IdentityProvider runs the OAuth authorization-code flow against LINE.
type IdentityProvider interface {
	// AuthCodeURL returns the authorize endpoint URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for an access token.
	Exchange(ctx context.Context, code string) (string, error)

	// Profile fetches the profile of the access token owner.
	Profile(ctx context.Context, accessToken string) (models.PlatformProfile, error)
}
