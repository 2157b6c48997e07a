package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/utils"
	"github.com/MKhiriev/go-photo-album/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// configured request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// LoginWithProfile implements [ServerAdapter]. It POSTs the profile to
// /api/auth/liff and stores the returned token.
func (h *httpServerAdapter) LoginWithProfile(ctx context.Context, profile models.PlatformProfile) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PlatformLoginRequest{User: profile}).
		SetResult(&out).
		Post("/api/auth/liff")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("profile login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if out.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("profile login: empty token in response")
	}

	h.SetToken(out.Token)
	return out, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.SessionUser, error) {
	var out models.MeResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get("/api/auth/me")
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, err
	}

	return out.User, nil
}

// Logout implements [ServerAdapter]. The server keeps no session state, so
// this only lets it log the event. The token is passed explicitly because the
// caller usually clears the adapter token before the request is sent.
func (h *httpServerAdapter) Logout(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListAlbums implements [ServerAdapter].
func (h *httpServerAdapter) ListAlbums(ctx context.Context, userID string) ([]models.Album, error) {
	var out models.AlbumsResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("userId", userID).
		SetResult(&out).
		Get("/api/albums")
	if err != nil {
		return nil, fmt.Errorf("list albums request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Albums, nil
}

// CreateAlbum implements [ServerAdapter].
func (h *httpServerAdapter) CreateAlbum(ctx context.Context, req models.CreateAlbumRequest) (models.Album, error) {
	var out models.AlbumResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/albums")
	if err != nil {
		return models.Album{}, fmt.Errorf("create album request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Album{}, err
	}

	return out.Album, nil
}

// EnsureDefaultAlbum implements [ServerAdapter].
func (h *httpServerAdapter) EnsureDefaultAlbum(ctx context.Context, userID string) (models.Album, bool, error) {
	var out models.AlbumResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EnsureDefaultAlbumRequest{UserID: userID}).
		SetResult(&out).
		Post("/api/albums/default")
	if err != nil {
		return models.Album{}, false, fmt.Errorf("ensure default album request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Album{}, false, err
	}

	return out.Album, resp.StatusCode() == http.StatusCreated, nil
}

// ListPhotos implements [ServerAdapter].
func (h *httpServerAdapter) ListPhotos(ctx context.Context, userID, albumID string) ([]models.Photo, error) {
	var out models.PhotosResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("userId", userID).
		SetPathParam("albumID", albumID).
		SetResult(&out).
		Get("/api/albums/{albumID}/photos")
	if err != nil {
		return nil, fmt.Errorf("list photos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Photos, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
