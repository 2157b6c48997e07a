package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/utils"
	"github.com/MKhiriev/go-photo-album/models"
)

// optionalAuth lets anonymous requests through. When a bearer token is sent
// it must be valid and belong to an active user; its claims are then stored
// in the request context for authorizeUser.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.parseAuthHeader(ctx, authHeader)
		if err != nil {
			log.Err(err).Str("func", "Handler.optionalAuth").Msg("bearer token rejected")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgAuthFailed, app.KindAuth)
			return
		}

		if err := h.services.AuthService.EnsureActive(ctx, token.Claims.UserID); err != nil {
			writeServiceError(w, r, err, "Handler.optionalAuth")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, token.Claims)))
	})
}

// authorizeUser reports whether the request may act on userID. It writes a
// 403 when the token belongs to someone else.
func authorizeUser(w http.ResponseWriter, r *http.Request, userID string) bool {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok || userID == "" || claims.UserID == userID {
		return true
	}
	writeServiceError(w, r, service.ErrForeignAlbum, "authorizeUser")
	return false
}

func (h *Handler) parseAuthHeader(ctx context.Context, authHeader string) (models.Token, error) {
	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return models.Token{}, err
	}
	return h.services.AuthService.ParseToken(ctx, tokenString)
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>". The
// scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
