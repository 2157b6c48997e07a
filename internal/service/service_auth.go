package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/utils"
	"github.com/MKhiriev/go-photo-album/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	resolver       BackendResolver

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, resolver BackendResolver, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		resolver:       resolver,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// LoginWithProfile records the login of a provider profile and issues a
// token for it.
//
// Remote users are upserted, so the first login creates the row and later
// ones bump last_login_at. An inactive user is refused with ErrUserInactive.
// The demo user is never written to the database.
func (a *authService) LoginWithProfile(ctx context.Context, profile models.PlatformProfile) (models.Token, models.SessionUser, error) {
	log := logger.FromContext(ctx)

	if profile.UserID == "" {
		log.Error().Str("func", "authService.LoginWithProfile").Msg("profile without user id")
		return models.Token{}, models.SessionUser{}, ErrValidationNoProfile
	}

	sessionUser := models.Claims{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		PictureURL:  profile.PictureURL,
	}.SessionUser()

	if a.resolver.Backend(profile.UserID) == models.RemoteBackend {
		user, err := a.userRepository.UpsertUser(ctx, profile.ToUser())
		if err != nil {
			log.Err(err).
				Str("func", "authService.LoginWithProfile").
				Str("line_user_id", profile.UserID).
				Msg("user upsert ended with error")
			return models.Token{}, models.SessionUser{}, fmt.Errorf("user upsert ended with error: %w", err)
		}
		if !user.IsActive {
			return models.Token{}, models.SessionUser{}, ErrUserInactive
		}
		sessionUser = models.NewSessionUser(user)
	}

	token, err := a.CreateToken(ctx, profile)
	if err != nil {
		return models.Token{}, models.SessionUser{}, err
	}

	log.Info().
		Str("func", "authService.LoginWithProfile").
		Str("line_user_id", profile.UserID).
		Msg("user logged in")

	return token, sessionUser, nil
}

// CreateToken issues a signed JWT for the given profile.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, profile models.PlatformProfile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, profile, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// EnsureActive checks that a remote user still exists and is active.
func (a *authService) EnsureActive(ctx context.Context, userID string) error {
	if a.resolver.Backend(userID) == models.LocalBackend {
		return nil
	}

	user, err := a.userRepository.FindUserByLineID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("user search ended with error: %w", err)
	}
	if !user.IsActive {
		return ErrUserInactive
	}

	return nil
}
