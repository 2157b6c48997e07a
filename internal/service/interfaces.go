package service

import (
	"context"

	"github.com/MKhiriev/go-photo-album/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService mints and verifies session tokens and keeps the user table in
// step with provider logins.
type AuthService interface {
	// LoginWithProfile upserts the user (remote backend only) and mints a
	// token for the profile.
	LoginWithProfile(ctx context.Context, profile models.PlatformProfile) (models.Token, models.SessionUser, error)
	CreateToken(ctx context.Context, profile models.PlatformProfile) (models.Token, error)
	// ParseToken returns ErrTokenIsExpiredOrInvalid for any invalid token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// EnsureActive fails with ErrUserNotFound or ErrUserInactive for remote
	// users. Local users always pass.
	EnsureActive(ctx context.Context, userID string) error
}

// OAuthService runs the authorization-code login with the identity provider.
type OAuthService interface {
	// AuthURL returns the provider authorize URL for state.
	AuthURL(ctx context.Context, state string) string
	// CompleteLogin exchanges code, fetches the profile and logs the user in.
	// Every failure wraps ErrProvider.
	CompleteLogin(ctx context.Context, code string) (models.Token, models.SessionUser, error)
}

// AlbumService serves albums from the backend owning the user.
type AlbumService interface {
	ListAlbums(ctx context.Context, userID string) ([]models.Album, error)
	CreateAlbum(ctx context.Context, req models.CreateAlbumRequest) (models.Album, error)
	// EnsureDefaultAlbum is idempotent: the second call returns the album
	// stored by the first one with Created=false.
	EnsureDefaultAlbum(ctx context.Context, userID string) (models.EnsureResult, error)
	ListPhotos(ctx context.Context, userID, albumID string) ([]models.Photo, error)
}

// HealthService reports liveness of the server.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
	// Ready reports whether the database answers.
	Ready(ctx context.Context) error
}
