// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/utils"
	"github.com/MKhiriev/go-photo-album/models"
)

const (
	oauthSessionName   = "photo_album_oauth"
	stateSessionKey    = "state"
	redirectSessionKey = "redirect"

	// authPagePath is the frontend page that finishes a provider login.
	authPagePath = "/auth"
)

// lineLogin starts the provider login. The state is kept in a signed,
// encrypted cookie and checked by lineCallback.
func (h *Handler) lineLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	state, err := h.keyChain.NewState()
	if err != nil {
		writeServiceError(w, r, err, "Handler.lineLogin")
		return
	}

	// A cookie that cannot be decoded still yields a fresh session.
	session, err := h.cookies.Get(r, oauthSessionName)
	if err != nil {
		log.Debug().Err(err).Str("func", "Handler.lineLogin").Msg("replacing unreadable oauth cookie")
	}
	session.Values[stateSessionKey] = state
	session.Values[redirectSessionKey] = redirectPath(r.URL.Query().Get("redirect_uri"))

	if err := session.Save(r, w); err != nil {
		writeServiceError(w, r, err, "Handler.lineLogin")
		return
	}

	http.Redirect(w, r, h.services.OAuthService.AuthURL(ctx, state), http.StatusFound)
}

// lineCallback finishes the provider login and always answers with a
// redirect to the frontend auth page.
func (h *Handler) lineCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	query := r.URL.Query()

	expectedState, redirect, err := h.popOAuthSession(w, r)
	if err != nil {
		log.Debug().Err(err).Str("func", "Handler.lineCallback").Msg("oauth cookie unusable")
	}

	if providerErr := query.Get("error"); providerErr != "" {
		log.Warn().
			Str("func", "Handler.lineCallback").
			Str("provider_error", providerErr).
			Str("description", query.Get("error_description")).
			Msg("provider denied the login")
		h.redirectToAuthPage(w, r, url.Values{"error": {providerErr}})
		return
	}

	code := query.Get("code")
	if code == "" {
		h.redirectToAuthPage(w, r, url.Values{"error": {app.CallbackErrNoCode}})
		return
	}

	if err := checkState(expectedState, query.Get("state")); err != nil {
		log.Warn().Err(err).Str("func", "Handler.lineCallback").Msg("oauth state rejected")
		h.redirectToAuthPage(w, r, url.Values{"error": {app.CallbackErrCallbackFailed}})
		return
	}

	token, user, err := h.services.OAuthService.CompleteLogin(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "Handler.lineCallback").Msg("provider login failed")
		h.redirectToAuthPage(w, r, url.Values{"error": {app.CallbackErrCallbackFailed}})
		return
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		log.Err(err).Str("func", "Handler.lineCallback").Msg("error encoding user")
		h.redirectToAuthPage(w, r, url.Values{"error": {app.CallbackErrCallbackFailed}})
		return
	}

	params := url.Values{
		"token": {token.SignedString},
		"user":  {string(userJSON)},
	}
	if redirect != "" {
		params.Set("redirect", redirect)
	}

	log.Info().Str("func", "Handler.lineCallback").Str("user_id", user.ID).Msg("provider login completed")
	h.redirectToAuthPage(w, r, params)
}

// popOAuthSession reads the state and redirect target and expires the
// cookie. The state is single use.
func (h *Handler) popOAuthSession(w http.ResponseWriter, r *http.Request) (state, redirect string, err error) {
	session, err := h.cookies.Get(r, oauthSessionName)
	if err != nil {
		return "", "", err
	}
	if session.IsNew {
		return "", "", errNoStateCookie
	}

	state, _ = session.Values[stateSessionKey].(string)
	redirect, _ = session.Values[redirectSessionKey].(string)

	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return state, redirect, err
	}
	return state, redirect, nil
}

func (h *Handler) redirectToAuthPage(w http.ResponseWriter, r *http.Request, params url.Values) {
	http.Redirect(w, r, h.frontendURL+authPagePath+"?"+params.Encode(), http.StatusFound)
}

func checkState(expected, got string) error {
	if expected == "" {
		return errNoStateCookie
	}
	if expected != got {
		return errStateMismatch
	}
	return nil
}

// redirectPath keeps only same-origin absolute paths.
func redirectPath(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return ""
	}
	return u.Path
}

// liffLogin exchanges a profile validated by the embedded client SDK for a
// session token.
func (h *Handler) liffLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PlatformLoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Str("func", "Handler.liffLogin").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, app.KindValidation)
		return
	}

	token, user, err := h.services.AuthService.LoginWithProfile(ctx, req.User)
	if err != nil {
		writeServiceError(w, r, err, "Handler.liffLogin")
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Success: true, Token: token.SignedString, User: user}, http.StatusOK)
}

// me returns the user embedded in the bearer token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := h.parseAuthHeader(r.Context(), r.Header.Get("Authorization"))
	switch {
	case errors.Is(err, ErrEmptyAuthorizationHeader):
		utils.WriteError(w, http.StatusBadRequest, app.MsgAuthTokenRequired, app.KindAuth)
		return
	case err != nil:
		log.Debug().Err(err).Str("func", "Handler.me").Msg("token rejected")
		utils.WriteError(w, http.StatusUnauthorized, app.MsgAuthFailed, app.KindAuth)
		return
	}

	utils.WriteJSON(w, models.MeResponse{User: token.Claims.SessionUser()}, http.StatusOK)
}

// logout only acknowledges the request. Issued tokens stay valid until they
// expire; there is no revocation store.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if _, err := getTokenFromAuthHeader(r.Header.Get("Authorization")); err != nil {
		utils.WriteError(w, http.StatusUnauthorized, app.MsgAuthTokenRequired, app.KindAuth)
		return
	}

	utils.WriteJSON(w, models.LogoutResponse{Success: true, Message: app.MsgLoggedOut}, http.StatusOK)
}
