package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/models"
)

type oauthService struct {
	provider    adapter.IdentityProvider
	authService AuthService

	logger *logger.Logger
}

func NewOAuthService(provider adapter.IdentityProvider, authService AuthService, logger *logger.Logger) OAuthService {
	return &oauthService{
		provider:    provider,
		authService: authService,
		logger:      logger,
	}
}

func (s *oauthService) AuthURL(_ context.Context, state string) string {
	return s.provider.AuthCodeURL(state)
}

// CompleteLogin runs the three steps of the callback: code exchange, profile
// fetch and login. All failures are reported as ErrProvider.
func (s *oauthService) CompleteLogin(ctx context.Context, code string) (models.Token, models.SessionUser, error) {
	log := logger.FromContext(ctx)

	accessToken, err := s.provider.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "oauthService.CompleteLogin").Msg("code exchange failed")
		return models.Token{}, models.SessionUser{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	profile, err := s.provider.Profile(ctx, accessToken)
	if err != nil {
		log.Err(err).Str("func", "oauthService.CompleteLogin").Msg("profile fetch failed")
		return models.Token{}, models.SessionUser{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	token, user, err := s.authService.LoginWithProfile(ctx, profile)
	if err != nil {
		return models.Token{}, models.SessionUser{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	return token, user, nil
}
