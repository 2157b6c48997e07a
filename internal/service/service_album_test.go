// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/mock"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/validators"
	"github.com/MKhiriev/go-photo-album/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type albumServiceFixture struct {
	svc    *albumService
	remote *mock.MockAlbumRepository
	local  *mock.MockAlbumRepository
	now    time.Time
}

func newAlbumServiceFixture(t *testing.T) albumServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := mock.NewMockAlbumRepository(ctrl)
	local := mock.NewMockAlbumRepository(ctrl)

	svc := NewAlbumService(
		remote, local,
		NewBackendResolver(testDemoUserID),
		validators.NewAlbumValidator(),
		validators.NewSanitizer(),
		logger.Nop(),
	).(*albumService)

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return albumServiceFixture{svc: svc, remote: remote, local: local, now: now}
}

func ptr[T any](v T) *T {
	return &v
}

func TestAlbumService_ListAlbums_RoutesByUser(t *testing.T) {
	f := newAlbumServiceFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().ListAlbums(ctx, "U1").Return([]models.Album{{ID: "r1"}}, nil)
	f.local.EXPECT().ListAlbums(ctx, testDemoUserID).Return([]models.Album{{ID: models.DefaultAlbumID}}, nil)

	remote, err := f.svc.ListAlbums(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "r1", remote[0].ID)

	local, err := f.svc.ListAlbums(ctx, testDemoUserID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAlbumID, local[0].ID)
}

func TestAlbumService_ListAlbums_Errors(t *testing.T) {
	f := newAlbumServiceFixture(t)

	_, err := f.svc.ListAlbums(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	dbErr := errors.New("db down")
	f.remote.EXPECT().ListAlbums(gomock.Any(), "U1").Return(nil, dbErr)

	_, err = f.svc.ListAlbums(context.Background(), "U1")
	assert.ErrorIs(t, err, dbErr)
}

func TestAlbumService_CreateAlbum_SanitizesBeforeStore(t *testing.T) {
	f := newAlbumServiceFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().CreateAlbum(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Album) (models.Album, error) {
			assert.Equal(t, "U1", a.UserID)
			assert.Equal(t, "Summer & Sea", a.Title)
			assert.Nil(t, a.Description)
			a.ID = "new-id"
			return a, nil
		},
	)

	album, err := f.svc.CreateAlbum(ctx, models.CreateAlbumRequest{
		UserID:      " U1 ",
		Title:       "<b>Summer</b> & Sea",
		Description: ptr("<script>alert(1)</script>"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", album.ID)
}

func TestAlbumService_CreateAlbum_LocalUser(t *testing.T) {
	f := newAlbumServiceFixture(t)

	f.local.EXPECT().CreateAlbum(gomock.Any(), gomock.Any()).Return(models.Album{ID: "local-1", UserID: testDemoUserID, Title: "Trip"}, nil)

	album, err := f.svc.CreateAlbum(context.Background(), models.CreateAlbumRequest{UserID: testDemoUserID, Title: "Trip"})
	require.NoError(t, err)
	assert.Equal(t, "local-1", album.ID)
}

func TestAlbumService_CreateAlbum_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateAlbumRequest
		wantErr error
	}{
		{name: "missing user", req: models.CreateAlbumRequest{Title: "t"}, wantErr: ErrValidationNoUserID},
		{name: "missing title", req: models.CreateAlbumRequest{UserID: "U1"}, wantErr: ErrValidationNoTitle},
		{name: "title of markup only", req: models.CreateAlbumRequest{UserID: "U1", Title: "<br/>"}, wantErr: ErrValidationNoTitle},
		{
			name:    "title too long",
			req:     models.CreateAlbumRequest{UserID: "U1", Title: strings.Repeat("あ", validators.MaxTitleLength+1)},
			wantErr: ErrValidationInvalidAlbum,
		},
		{
			name:    "bad thumbnail",
			req:     models.CreateAlbumRequest{UserID: "U1", Title: "t", ThumbnailURL: ptr("javascript:alert(1)")},
			wantErr: ErrValidationInvalidAlbum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAlbumServiceFixture(t)
			_, err := f.svc.CreateAlbum(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAlbumService_CreateAlbum_RepositoryError(t *testing.T) {
	f := newAlbumServiceFixture(t)
	dbErr := errors.New("insert failed")

	f.remote.EXPECT().CreateAlbum(gomock.Any(), gomock.Any()).Return(models.Album{}, dbErr)

	_, err := f.svc.CreateAlbum(context.Background(), models.CreateAlbumRequest{UserID: "U1", Title: "t"})
	assert.ErrorIs(t, err, dbErr)
}

func TestAlbumService_EnsureDefaultAlbum_CreatesOnce(t *testing.T) {
	f := newAlbumServiceFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.remote.EXPECT().FindDefaultAlbum(ctx, "U1").Return(models.Album{}, store.ErrAlbumNotFound),
		f.remote.EXPECT().CreateAlbumWithPhotos(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Album, photos []models.Photo) (models.Album, error) {
				assert.Equal(t, models.DefaultAlbumTitle, a.Title)
				assert.Equal(t, "U1", a.UserID)
				assert.True(t, f.now.Equal(a.CreatedAt))
				assert.Len(t, photos, 6)
				a.ID = "db-uuid"
				return a, nil
			},
		),
	)

	first, err := f.svc.EnsureDefaultAlbum(ctx, "U1")
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "db-uuid", first.Album.ID)
	assert.Len(t, first.Photos, 6)

	f.remote.EXPECT().FindDefaultAlbum(ctx, "U1").Return(first.Album, nil)

	second, err := f.svc.EnsureDefaultAlbum(ctx, "U1")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Album.ID, second.Album.ID)
}

func TestAlbumService_EnsureDefaultAlbum_Errors(t *testing.T) {
	dbErr := errors.New("db down")

	t.Run("no user", func(t *testing.T) {
		f := newAlbumServiceFixture(t)
		_, err := f.svc.EnsureDefaultAlbum(context.Background(), "")
		assert.ErrorIs(t, err, ErrValidationNoUserID)
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := newAlbumServiceFixture(t)
		f.local.EXPECT().FindDefaultAlbum(gomock.Any(), testDemoUserID).Return(models.Album{}, dbErr)

		_, err := f.svc.EnsureDefaultAlbum(context.Background(), testDemoUserID)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("create failure", func(t *testing.T) {
		f := newAlbumServiceFixture(t)
		f.remote.EXPECT().FindDefaultAlbum(gomock.Any(), "U1").Return(models.Album{}, store.ErrAlbumNotFound)
		f.remote.EXPECT().CreateAlbumWithPhotos(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Album{}, dbErr)

		_, err := f.svc.EnsureDefaultAlbum(context.Background(), "U1")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAlbumService_ListPhotos_LocalDefaultAlbumKeepsBaseline(t *testing.T) {
	f := newAlbumServiceFixture(t)
	uploadedAt := f.now

	uploaded := models.Photo{ID: "up-1", Filename: "new.jpg", DisplayOrder: 7, UploadedAt: &uploadedAt}
	f.local.EXPECT().ListPhotos(gomock.Any(), testDemoUserID, models.DefaultAlbumID).Return([]models.Photo{uploaded}, nil)

	photos, err := f.svc.ListPhotos(context.Background(), testDemoUserID, models.DefaultAlbumID)
	require.NoError(t, err)
	require.Len(t, photos, 7)
	assert.Equal(t, "beach-sunset.png", photos[0].Filename)
	assert.Equal(t, "up-1", photos[6].ID)
}

func TestAlbumService_ListPhotos_RemoteSorted(t *testing.T) {
	f := newAlbumServiceFixture(t)

	f.remote.EXPECT().ListPhotos(gomock.Any(), "U1", "a1").Return([]models.Photo{
		{ID: "p2", DisplayOrder: 2},
		{ID: "p1", DisplayOrder: 1},
	}, nil)

	photos, err := f.svc.ListPhotos(context.Background(), "U1", "a1")
	require.NoError(t, err)
	assert.Equal(t, "p1", photos[0].ID)
	assert.Equal(t, "p2", photos[1].ID)
}

func TestAlbumService_ListPhotos_Errors(t *testing.T) {
	f := newAlbumServiceFixture(t)

	_, err := f.svc.ListPhotos(context.Background(), "", "a1")
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	f.remote.EXPECT().ListPhotos(gomock.Any(), "U1", "missing").Return(nil, store.ErrAlbumNotFound)

	_, err = f.svc.ListPhotos(context.Background(), "U1", "missing")
	assert.ErrorIs(t, err, store.ErrAlbumNotFound)
}
