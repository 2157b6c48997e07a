package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-album/models"
)

// Keys of the persisted session pair.
const (
	AuthTokenKey = "auth_token"
	AuthUserKey  = "auth_user"
)

// ErrNoSession is returned by [SessionStore.Load] when nothing was persisted.
var ErrNoSession = errors.New("no persisted session")

// SessionStore persists the token and user of the signed-in client.
type SessionStore struct {
	kv KV
}

func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Load returns the persisted pair. A missing key of either half is
// [ErrNoSession]; an undecodable user is [ErrCorruptedData].
func (s *SessionStore) Load(ctx context.Context) (string, models.SessionUser, error) {
	token, err := s.kv.Get(ctx, AuthTokenKey)
	if errors.Is(err, ErrKeyNotFound) {
		return "", models.SessionUser{}, ErrNoSession
	}
	if err != nil {
		return "", models.SessionUser{}, err
	}

	raw, err := s.kv.Get(ctx, AuthUserKey)
	if errors.Is(err, ErrKeyNotFound) {
		return "", models.SessionUser{}, ErrNoSession
	}
	if err != nil {
		return "", models.SessionUser{}, err
	}

	var user models.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", models.SessionUser{}, fmt.Errorf("%w: %w", ErrCorruptedData, err)
	}
	if token == "" || user.ID == "" {
		return "", models.SessionUser{}, fmt.Errorf("%w: empty session", ErrCorruptedData)
	}

	return token, user, nil
}

// Save persists both halves of the session. When the user cannot be written
// after the token was, both keys are dropped so that Load never pairs the new
// token with an older user.
func (s *SessionStore) Save(ctx context.Context, token string, user models.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error encoding user: %w", err)
	}
	if err := s.kv.Set(ctx, AuthTokenKey, token); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, AuthUserKey, string(data)); err != nil {
		return errors.Join(err, s.Clear(ctx))
	}
	return nil
}

// Clear removes both keys. Both removals are attempted.
func (s *SessionStore) Clear(ctx context.Context) error {
	return errors.Join(
		s.kv.Remove(ctx, AuthTokenKey),
		s.kv.Remove(ctx, AuthUserKey),
	)
}
