// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/utils"
	"github.com/MKhiriev/go-photo-album/models"
	"golang.org/x/oauth2"
)

// lineScopes are requested on every authorization.
var lineScopes = []string{"profile", "openid"}

type lineProfile struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl"`
	StatusMessage string `json:"statusMessage"`
}

type lineProvider struct {
	oauth      *oauth2.Config
	profileURL string
	client     *utils.HTTPClient
	// httpClient is handed to oauth2 for the token exchange
	httpClient *http.Client

	logger *logger.Logger
}

// NewLineProvider builds the LINE Login [IdentityProvider]. Token exchange
// goes through golang.org/x/oauth2 and the profile is fetched with resty.
func NewLineProvider(cfg config.Line, serverCfg config.Server, logger *logger.Logger) IdentityProvider {
	client := utils.NewHTTPClient("", serverCfg.RequestTimeout)

	return &lineProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ChannelID,
			ClientSecret: cfg.ChannelSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       lineScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		profileURL: cfg.ProfileURL,
		client:     client,
		httpClient: client.GetClient(),
		logger:     logger,
	}
}

// AuthCodeURL implements [IdentityProvider].
func (p *lineProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Exchange implements [IdentityProvider].
func (p *lineProvider) Exchange(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "lineProvider.Exchange").
			Msg("token endpoint rejected the code")
		return "", fmt.Errorf("%w: %w", ErrCodeExchange, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrCodeExchange)
	}

	return token.AccessToken, nil
}

// Profile implements [IdentityProvider].
func (p *lineProvider) Profile(ctx context.Context, accessToken string) (models.PlatformProfile, error) {
	var profile lineProfile

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&profile).
		Get(p.profileURL)
	if err != nil {
		return models.PlatformProfile{}, fmt.Errorf("%w: %w", ErrProfileFetch, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "lineProvider.Profile").
			Int("status", resp.StatusCode()).
			Msg("profile endpoint failed")
		return models.PlatformProfile{}, fmt.Errorf("%w: %w", ErrProfileFetch, err)
	}
	if profile.UserID == "" {
		return models.PlatformProfile{}, ErrInvalidProfile
	}

	return models.PlatformProfile{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		PictureURL:  profile.PictureURL,
	}, nil
}
