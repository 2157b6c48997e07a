// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/mock"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSession(t *testing.T) (*ClientSessionManager, *mock.MockServerAdapter, store.KV) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ad := mock.NewMockServerAdapter(ctrl)
	ad.EXPECT().SetToken(gomock.Any()).AnyTimes()

	kv := store.NewMemoryKV(0)
	return NewClientSessionManager(store.NewSessionStore(kv), ad, testDemoUserID, logger.Nop()), ad, kv
}

func unauthorized() error {
	return adapter.NewResponseError(http.StatusUnauthorized, app.KindAuth, app.MsgAuthFailed)
}

func TestClientSessionManager_StartsUninitialized(t *testing.T) {
	m, _, _ := newTestSession(t)

	assert.Equal(t, StateUninitialized, m.State())
	_, ok := m.User()
	assert.False(t, ok)
}

func TestClientSessionManager_LoginPersistsAndRestores(t *testing.T) {
	m, ad, kv := newTestSession(t)
	ctx := context.Background()
	user := models.SessionUser{ID: "U1", DisplayName: "Taro"}

	require.NoError(t, m.Login(ctx, "tok-1", user))
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "tok-1", m.Token())

	token, err := kv.Get(ctx, store.AuthTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	restored := NewClientSessionManager(store.NewSessionStore(kv), ad, testDemoUserID, logger.Nop())
	require.NoError(t, restored.Restore(ctx))
	assert.Equal(t, StateAuthenticated, restored.State())

	got, ok := restored.User()
	require.True(t, ok)
	assert.Equal(t, user, got)
	assert.False(t, restored.IsDemoUser())
}

func TestClientSessionManager_RestoreWithoutSession(t *testing.T) {
	m, _, _ := newTestSession(t)

	require.NoError(t, m.Restore(context.Background()))
	assert.Equal(t, StateAnonymous, m.State())
}

func TestClientSessionManager_RestoreClearsCorruptedSession(t *testing.T) {
	m, _, kv := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, store.AuthTokenKey, "tok"))
	require.NoError(t, kv.Set(ctx, store.AuthUserKey, "{not json"))

	require.NoError(t, m.Restore(ctx))
	assert.Equal(t, StateAnonymous, m.State())

	_, err := kv.Get(ctx, store.AuthTokenKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
	_, err = kv.Get(ctx, store.AuthUserKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestClientSessionManager_LogoutClearsSynchronously(t *testing.T) {
	m, ad, kv := newTestSession(t)
	ctx := context.Background()

	release := make(chan struct{})
	ad.EXPECT().Logout(gomock.Any(), "tok-1").DoAndReturn(func(context.Context, string) error {
		<-release
		return nil
	})

	require.NoError(t, m.Login(ctx, "tok-1", models.SessionUser{ID: "U1"}))

	task := m.Logout(ctx)

	assert.Equal(t, StateAnonymous, m.State())
	assert.Empty(t, m.Token())
	_, err := kv.Get(ctx, store.AuthTokenKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	select {
	case <-task.Done():
		t.Fatal("server notification finished before it was released")
	default:
	}

	close(release)
	require.NoError(t, task.Wait(ctx))
}

func TestClientSessionManager_LogoutFailureIsReportedOnce(t *testing.T) {
	m, ad, _ := newTestSession(t)
	ctx := context.Background()
	boom := errors.New("network down")

	var calls atomic.Int32
	ad.EXPECT().Logout(gomock.Any(), "tok").DoAndReturn(func(context.Context, string) error {
		calls.Add(1)
		return boom
	}).Times(1)

	require.NoError(t, m.Login(ctx, "tok", models.SessionUser{ID: "U1"}))

	err := m.Logout(ctx).Wait(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, StateAnonymous, m.State())
}

func TestClientSessionManager_LogoutWhenAnonymousSkipsServer(t *testing.T) {
	m, _, _ := newTestSession(t)

	task := m.Logout(context.Background())
	require.NoError(t, task.Wait(context.Background()))
	assert.Equal(t, StateAnonymous, m.State())
}

func TestClientSessionManager_LoginWithPlatformProfile(t *testing.T) {
	m, ad, _ := newTestSession(t)
	ctx := context.Background()
	profile := models.PlatformProfile{UserID: testDemoUserID, DisplayName: "Demo"}

	ad.EXPECT().LoginWithProfile(ctx, profile).Return(models.AuthResponse{
		Token: "tok",
		User:  models.SessionUser{ID: testDemoUserID, DisplayName: "Demo"},
	}, nil)

	user, err := m.LoginWithPlatformProfile(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, "Demo", user.DisplayName)
	assert.Equal(t, StateAuthenticated, m.State())
	assert.True(t, m.IsDemoUser())
}

func TestClientSessionManager_LoginWithPlatformProfile_Failure(t *testing.T) {
	m, ad, _ := newTestSession(t)
	ctx := context.Background()

	ad.EXPECT().LoginWithProfile(ctx, gomock.Any()).Return(models.AuthResponse{}, adapter.NewResponseError(http.StatusBadRequest, app.KindValidation, app.MsgUserInfoMissing))

	_, err := m.LoginWithPlatformProfile(ctx, models.PlatformProfile{UserID: "U1"})
	assert.ErrorIs(t, err, ErrAuthExchange)
	assert.NotEqual(t, StateAuthenticated, m.State())

	_, err = m.LoginWithPlatformProfile(ctx, models.PlatformProfile{})
	assert.ErrorIs(t, err, ErrValidationNoProfile)
}

func TestClientSessionManager_CheckAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("not signed in", func(t *testing.T) {
		m, _, _ := newTestSession(t)
		assert.ErrorIs(t, m.CheckAuth(ctx), ErrNotAuthenticated)
	})

	t.Run("accepted token refreshes profile", func(t *testing.T) {
		m, ad, _ := newTestSession(t)
		require.NoError(t, m.Login(ctx, "tok", models.SessionUser{ID: "U1", DisplayName: "Old"}))
		ad.EXPECT().Me(ctx).Return(models.SessionUser{ID: "U1", DisplayName: "New"}, nil)

		require.NoError(t, m.CheckAuth(ctx))
		user, ok := m.User()
		require.True(t, ok)
		assert.Equal(t, "New", user.DisplayName)
	})

	t.Run("rejected token logs out", func(t *testing.T) {
		m, ad, _ := newTestSession(t)
		require.NoError(t, m.Login(ctx, "tok", models.SessionUser{ID: "U1"}))
		ad.EXPECT().Me(ctx).Return(models.SessionUser{}, unauthorized())
		ad.EXPECT().Logout(gomock.Any(), "tok").Return(nil).AnyTimes()

		err := m.CheckAuth(ctx)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		assert.Equal(t, StateAnonymous, m.State())
	})

	t.Run("transport failure logs out", func(t *testing.T) {
		m, ad, _ := newTestSession(t)
		require.NoError(t, m.Login(ctx, "tok", models.SessionUser{ID: "U1"}))
		ad.EXPECT().Me(ctx).Return(models.SessionUser{}, errors.New("connection refused"))
		ad.EXPECT().Logout(gomock.Any(), "tok").Return(nil).AnyTimes()

		assert.ErrorIs(t, m.CheckAuth(ctx), ErrNotAuthenticated)
		assert.Equal(t, StateAnonymous, m.State())
	})

	t.Run("server error keeps session", func(t *testing.T) {
		m, ad, _ := newTestSession(t)
		require.NoError(t, m.Login(ctx, "tok", models.SessionUser{ID: "U1"}))
		ad.EXPECT().Me(ctx).Return(models.SessionUser{}, adapter.NewResponseError(http.StatusInternalServerError, app.KindServer, app.MsgServerError))

		assert.Error(t, m.CheckAuth(ctx))
		assert.Equal(t, StateAuthenticated, m.State())
	})
}

func TestClientSessionManager_AuthCheckJob(t *testing.T) {
	m, ad, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, m.Login(ctx, "tok", models.SessionUser{ID: "U1"}))

	checked := make(chan struct{}, 1)
	ad.EXPECT().Me(gomock.Any()).DoAndReturn(func(context.Context) (models.SessionUser, error) {
		select {
		case checked <- struct{}{}:
		default:
		}
		return models.SessionUser{ID: "U1"}, nil
	}).MinTimes(1)

	job := m.AuthCheckJob(10 * time.Millisecond)
	job.Run(ctx)
	defer job.Stop()

	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("auth check did not run")
	}
}
