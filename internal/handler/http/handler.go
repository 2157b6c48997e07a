package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/crypto"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/utils"
)

// oauthStateMaxAge bounds how long a started provider login may take.
const oauthStateMaxAge = 10 * time.Minute

type Handler struct {
	services *service.Services
	keyChain crypto.KeyChainService

	// cookies keeps the OAuth state between /line and /line/callback.
	cookies *sessions.CookieStore

	frontendURL    string
	requestTimeout time.Duration

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, keyChain crypto.KeyChainService, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	hashKey, blockKey, err := keyChain.CookieKeys(cfg.App.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("error deriving session cookie keys: %w", err)
	}

	frontendURL := strings.TrimRight(cfg.App.FrontendURL, "/")

	cookies := sessions.NewCookieStore(hashKey, blockKey)
	cookies.Options = &sessions.Options{
		Path:     "/api/auth",
		MaxAge:   int(oauthStateMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   strings.HasPrefix(frontendURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		keyChain:       keyChain,
		cookies:        cookies,
		frontendURL:    frontendURL,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}, nil
}
