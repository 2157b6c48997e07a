package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLineProvider(t *testing.T, srv *httptest.Server) IdentityProvider {
	t.Helper()
	return NewLineProvider(config.Line{
		ChannelID:     "channel",
		ChannelSecret: "secret",
		CallbackURL:   "http://localhost:8080/api/auth/line/callback",
		AuthURL:       srv.URL + "/authorize",
		TokenURL:      srv.URL + "/token",
		ProfileURL:    srv.URL + "/profile",
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}

func lineServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		assert.Equal(t, "channel", r.Form.Get("client_id"))
		assert.Equal(t, "secret", r.Form.Get("client_secret"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-1","token_type":"Bearer","expires_in":2592000}`))
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer access-1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"userId":"U123","displayName":"Taro","pictureUrl":"https://example.com/p.png"}`))
		case "Bearer no-id":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"displayName":"Ghost"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLineProvider_AuthCodeURL(t *testing.T) {
	p := newTestLineProvider(t, lineServer(t))

	u, err := url.Parse(p.AuthCodeURL("state-1"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "/authorize", u.Path)
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "channel", q.Get("client_id"))
	assert.Equal(t, "profile openid", q.Get("scope"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "http://localhost:8080/api/auth/line/callback", q.Get("redirect_uri"))
}

func TestLineProvider_ExchangeAndProfile(t *testing.T) {
	p := newTestLineProvider(t, lineServer(t))
	ctx := context.Background()

	accessToken, err := p.Exchange(ctx, "good-code")
	require.NoError(t, err)
	assert.Equal(t, "access-1", accessToken)

	profile, err := p.Profile(ctx, accessToken)
	require.NoError(t, err)
	assert.Equal(t, "U123", profile.UserID)
	assert.Equal(t, "Taro", profile.DisplayName)
	assert.Equal(t, "https://example.com/p.png", profile.PictureURL)
}

func TestLineProvider_Failures(t *testing.T) {
	p := newTestLineProvider(t, lineServer(t))
	ctx := context.Background()

	_, err := p.Exchange(ctx, "bad-code")
	assert.ErrorIs(t, err, ErrCodeExchange)

	_, err = p.Profile(ctx, "expired")
	assert.ErrorIs(t, err, ErrProfileFetch)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = p.Profile(ctx, "no-id")
	assert.ErrorIs(t, err, ErrInvalidProfile)
}
