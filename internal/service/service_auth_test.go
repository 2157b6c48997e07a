package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/mock"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDemoUserID = "test-user-1"

func newTestAuthService(t *testing.T, ctrl *gomock.Controller, duration time.Duration) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-photo-album-test",
		TokenDuration: duration,
	}
	return NewAuthService(repo, NewBackendResolver(testDemoUserID), cfg, logger.Nop()), repo
}

func TestAuthService_LoginWithProfile_RemoteUserIsUpserted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	profile := models.PlatformProfile{UserID: "U1234", DisplayName: "Taro", PictureURL: "https://example.com/p.png"}
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	repo.EXPECT().UpsertUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "U1234", u.LineUserID)
			assert.Equal(t, "Taro", u.DisplayName)
			u.IsActive = true
			u.CreatedAt = createdAt
			return u, nil
		},
	)

	token, user, err := svc.LoginWithProfile(ctx, profile)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "U1234", token.Claims.UserID)
	assert.Equal(t, "U1234", user.ID)
	require.NotNil(t, user.CreatedAt)
	assert.True(t, createdAt.Equal(*user.CreatedAt))
}

func TestAuthService_LoginWithProfile_DemoUserSkipsDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl, time.Hour)

	token, user, err := svc.LoginWithProfile(context.Background(), models.PlatformProfile{
		UserID:      testDemoUserID,
		DisplayName: "Demo",
	})
	require.NoError(t, err)
	assert.Equal(t, testDemoUserID, token.Claims.UserID)
	assert.Equal(t, "Demo", user.DisplayName)
}

func TestAuthService_LoginWithProfile_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl, time.Hour)

	repo.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(models.User{LineUserID: "U1", IsActive: false}, nil)

	_, _, err := svc.LoginWithProfile(context.Background(), models.PlatformProfile{UserID: "U1"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthService_LoginWithProfile_Errors(t *testing.T) {
	t.Run("empty profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestAuthService(t, ctrl, time.Hour)

		_, _, err := svc.LoginWithProfile(context.Background(), models.PlatformProfile{})
		assert.ErrorIs(t, err, ErrValidationNoProfile)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestAuthService(t, ctrl, time.Hour)
		dbErr := errors.New("connection reset")

		repo.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

		_, _, err := svc.LoginWithProfile(context.Background(), models.PlatformProfile{UserID: "U1"})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("token creation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _ := newTestAuthService(t, ctrl, 0)

		_, _, err := svc.LoginWithProfile(context.Background(), models.PlatformProfile{UserID: testDemoUserID})
		assert.ErrorIs(t, err, ErrTokenCreationFailed)
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.PlatformProfile{UserID: "U1", DisplayName: "Hanako"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "U1", parsed.Claims.UserID)
	assert.Equal(t, "Hanako", parsed.Claims.DisplayName)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.ParseToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl, time.Nanosecond)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.PlatformProfile{UserID: "U1"})
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ForeignIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl, time.Hour)
	other := NewAuthService(nil, NewBackendResolver(""), config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.PlatformProfile{UserID: "U1"})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_EnsureActive(t *testing.T) {
	dbErr := errors.New("db down")

	tests := []struct {
		name    string
		userID  string
		setup   func(repo *mock.MockUserRepository)
		wantErr error
	}{
		{
			name:   "demo user always active",
			userID: testDemoUserID,
			setup:  func(*mock.MockUserRepository) {},
		},
		{
			name:   "active remote user",
			userID: "U1",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByLineID(gomock.Any(), "U1").Return(models.User{LineUserID: "U1", IsActive: true}, nil)
			},
		},
		{
			name:   "inactive remote user",
			userID: "U2",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByLineID(gomock.Any(), "U2").Return(models.User{LineUserID: "U2"}, nil)
			},
			wantErr: ErrUserInactive,
		},
		{
			name:   "unknown remote user",
			userID: "U3",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByLineID(gomock.Any(), "U3").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:   "repository failure",
			userID: "U4",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByLineID(gomock.Any(), "U4").Return(models.User{}, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthService(t, ctrl, time.Hour)
			tt.setup(repo)

			err := svc.EnsureActive(context.Background(), tt.userID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
