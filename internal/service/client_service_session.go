// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/workers"
	"github.com/MKhiriev/go-photo-album/models"
)

// SessionState is the lifecycle state of a [ClientSessionManager].
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateRestoring
	StateAuthenticated
	StateAnonymous
)

func (s SessionState) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// logoutTimeout bounds the background logout notification.
const logoutTimeout = 10 * time.Second

// ClientSessionManager owns the client session: the token, the signed in
// user and their persisted copies under the auth_token and auth_user keys.
//
// It is constructed once by [NewClientServices] and passed to whoever needs
// it. Transitions are serialized by a mutex and the last writer wins.
type ClientSessionManager struct {
	mu    sync.RWMutex
	state SessionState
	token string
	user  models.SessionUser

	sessions   *store.SessionStore
	adapter    adapter.ServerAdapter
	demoUserID string

	logger *logger.Logger
}

func NewClientSessionManager(sessions *store.SessionStore, serverAdapter adapter.ServerAdapter, demoUserID string, logger *logger.Logger) *ClientSessionManager {
	return &ClientSessionManager{
		state:      StateUninitialized,
		sessions:   sessions,
		adapter:    serverAdapter,
		demoUserID: demoUserID,
		logger:     logger,
	}
}

// State returns the current lifecycle state.
func (m *ClientSessionManager) State() SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns the signed in user. ok is false unless the manager is
// authenticated.
func (m *ClientSessionManager) User() (user models.SessionUser, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated {
		return models.SessionUser{}, false
	}
	return m.user, true
}

// Token returns the current session token or "".
func (m *ClientSessionManager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// DemoUserID returns the reserved user id served from local storage.
func (m *ClientSessionManager) DemoUserID() string {
	return m.demoUserID
}

// IsDemoUser reports whether the signed in user is served from local
// storage only.
func (m *ClientSessionManager) IsDemoUser() bool {
	user, ok := m.User()
	return ok && m.demoUserID != "" && user.ID == m.demoUserID
}

// Restore loads a persisted session. A session that cannot be parsed is
// removed from storage and the manager ends up anonymous.
func (m *ClientSessionManager) Restore(ctx context.Context) error {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateRestoring

	token, user, err := m.sessions.Load(ctx)
	switch {
	case err == nil:
		m.setAuthenticated(token, user)
		log.Debug().Str("func", "ClientSessionManager.Restore").Str("user_id", user.ID).Msg("session restored")
		return nil

	case errors.Is(err, store.ErrNoSession):
		m.setAnonymous()
		return nil

	case errors.Is(err, store.ErrCorruptedData):
		log.Warn().Err(err).Str("func", "ClientSessionManager.Restore").Msg("dropping corrupted session")
		m.setAnonymous()
		if clearErr := m.sessions.Clear(ctx); clearErr != nil {
			return fmt.Errorf("error clearing corrupted session: %w", clearErr)
		}
		return nil

	default:
		m.setAnonymous()
		return fmt.Errorf("error loading session: %w", err)
	}
}

// Login stores token and user in memory and in persistent storage.
func (m *ClientSessionManager) Login(ctx context.Context, token string, user models.SessionUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setAuthenticated(token, user)

	if err := m.sessions.Save(ctx, token, user); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ClientSessionManager.Login").
			Msg("session is kept in memory only")
		return fmt.Errorf("error persisting session: %w", err)
	}
	return nil
}

// LoginWithPlatformProfile trades a platform profile for a session token
// and logs in with it.
func (m *ClientSessionManager) LoginWithPlatformProfile(ctx context.Context, profile models.PlatformProfile) (models.SessionUser, error) {
	if profile.UserID == "" {
		return models.SessionUser{}, ErrValidationNoProfile
	}

	resp, err := m.adapter.LoginWithProfile(ctx, profile)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ClientSessionManager.LoginWithPlatformProfile").
			Str("user_id", profile.UserID).
			Msg("profile exchange failed")
		return models.SessionUser{}, fmt.Errorf("%w: %w", ErrAuthExchange, mapAdapterError(err))
	}

	if err := m.Login(ctx, resp.Token, resp.User); err != nil {
		return resp.User, err
	}
	return resp.User, nil
}

// Logout forgets the session right away and tells the server about it in the
// background. The returned task may be waited on or ignored. The server call
// is made once and never retried; its failure is only logged.
func (m *ClientSessionManager) Logout(ctx context.Context) *workers.Task {
	log := logger.FromContext(ctx)

	m.mu.Lock()
	token := m.token
	m.setAnonymous()
	clearErr := m.sessions.Clear(ctx)
	m.mu.Unlock()

	if clearErr != nil {
		log.Err(clearErr).Str("func", "ClientSessionManager.Logout").Msg("error clearing persisted session")
	}

	if token == "" {
		return workers.Completed(nil)
	}

	bg := context.WithoutCancel(ctx)
	return workers.Go(func() error {
		callCtx, cancel := context.WithTimeout(bg, logoutTimeout)
		defer cancel()

		if err := m.adapter.Logout(callCtx, token); err != nil {
			log.Warn().Err(err).Str("func", "ClientSessionManager.Logout").Msg("server logout failed")
			return err
		}
		return nil
	})
}

// CheckAuth asks the server whether the current token is still accepted.
// A rejected token or an unreachable server ends the session.
func (m *ClientSessionManager) CheckAuth(ctx context.Context) error {
	if m.State() != StateAuthenticated {
		return ErrNotAuthenticated
	}

	user, err := m.adapter.Me(ctx)
	if err == nil {
		m.mu.Lock()
		if m.state == StateAuthenticated && m.user.ID == user.ID {
			m.user.DisplayName = user.DisplayName
			m.user.PictureURL = user.PictureURL
		}
		m.mu.Unlock()
		return nil
	}

	if isAuthRejection(err) || !isServerAnswer(err) {
		logger.FromContext(ctx).Info().Err(err).
			Str("func", "ClientSessionManager.CheckAuth").
			Msg("session rejected, logging out")
		m.Logout(ctx)
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, mapAdapterError(err))
	}

	return mapAdapterError(err)
}

// AuthCheckJob returns a worker running CheckAuth every interval while the
// manager is authenticated.
func (m *ClientSessionManager) AuthCheckJob(interval time.Duration) *workers.PeriodicJob {
	return workers.NewPeriodicJob("auth-check", interval, func(ctx context.Context) error {
		if m.State() != StateAuthenticated {
			return nil
		}
		return m.CheckAuth(ctx)
	}, m.logger)
}

func (m *ClientSessionManager) setAuthenticated(token string, user models.SessionUser) {
	m.state = StateAuthenticated
	m.token = token
	m.user = user
	m.adapter.SetToken(token)
}

func (m *ClientSessionManager) setAnonymous() {
	m.state = StateAnonymous
	m.token = ""
	m.user = models.SessionUser{}
	m.adapter.SetToken("")
}

func isAuthRejection(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}

// isServerAnswer reports whether err came from a server response rather
// than from the transport.
func isServerAnswer(err error) bool {
	var respErr *adapter.ResponseError
	return errors.As(err, &respErr)
}
