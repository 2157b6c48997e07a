package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-photo-album/internal/utils"
	"github.com/MKhiriev/go-photo-album/models"
)

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc", wantToken: "abc"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "basic auth", header: "Basic dXNlcg==", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestOptionalAuth_AnonymousPassesWithoutClaims(t *testing.T) {
	f := newHandlerFixture(t)

	var hasClaims bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasClaims = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	f.handler.optionalAuth(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.False(t, hasClaims)
}

func TestOptionalAuth_StoresClaims(t *testing.T) {
	f := newHandlerFixture(t)
	header := f.expectToken("U1")

	var claims models.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", header)
	rr := httptest.NewRecorder()
	f.handler.optionalAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "U1", claims.UserID)
}

func TestAuthorizeUser(t *testing.T) {
	tests := []struct {
		name      string
		claims    *models.Claims
		userID    string
		wantAllow bool
	}{
		{name: "anonymous", userID: "U1", wantAllow: true},
		{name: "own user", claims: &models.Claims{UserID: "U1"}, userID: "U1", wantAllow: true},
		{name: "no user id is left to validation", claims: &models.Claims{UserID: "U1"}, userID: "", wantAllow: true},
		{name: "another user", claims: &models.Claims{UserID: "U1"}, userID: "U2", wantAllow: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.claims != nil {
				req = req.WithContext(utils.WithClaims(req.Context(), *tt.claims))
			}
			rr := httptest.NewRecorder()

			allowed := authorizeUser(rr, req, tt.userID)

			assert.Equal(t, tt.wantAllow, allowed)
			if !tt.wantAllow {
				assert.Equal(t, http.StatusForbidden, rr.Code)
			}
		})
	}
}
