package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)

func newTestLocalRepo() (*localAlbumRepository, KV) {
	kv := NewMemoryKV(0)
	repo := NewLocalAlbumRepository(kv, logger.Nop()).(*localAlbumRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, kv
}

func TestLocalAlbumRepository_ListAlbums_PrependsDefault(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestLocalRepo()

	albums, err := repo.ListAlbums(ctx, "test-user-1")
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, models.DefaultAlbumID, albums[0].ID)
	assert.Equal(t, 6, albums[0].PhotoCount)

	created, err := repo.CreateAlbum(ctx, models.Album{UserID: "test-user-1", Title: "Trip"})
	require.NoError(t, err)

	albums, err = repo.ListAlbums(ctx, "test-user-1")
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, models.DefaultAlbumID, albums[0].ID)
	assert.Equal(t, created.ID, albums[1].ID)
}

func TestLocalAlbumRepository_CreateAlbum(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestLocalRepo()

	album, err := repo.CreateAlbum(ctx, models.Album{UserID: "u", Title: "Trip", PhotoCount: 9})
	require.NoError(t, err)

	assert.NotEmpty(t, album.ID)
	assert.Equal(t, "Trip", album.Title)
	assert.Equal(t, 0, album.PhotoCount)
	assert.Equal(t, fixedNow, album.CreatedAt)

	stored, err := repo.index.Find(ctx, album.ID)
	require.NoError(t, err)
	assert.Equal(t, album, stored)
}

func TestLocalAlbumRepository_DefaultAlbum(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestLocalRepo()

	_, err := repo.FindDefaultAlbum(ctx, "u")
	assert.ErrorIs(t, err, ErrAlbumNotFound)

	album, err := repo.CreateAlbumWithPhotos(ctx, models.DefaultAlbum("u", fixedNow), models.DefaultPhotos())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAlbumID, album.ID)

	found, err := repo.FindDefaultAlbum(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, album, found)

	photos, err := repo.ListPhotos(ctx, "u", models.DefaultAlbumID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPhotos(), photos)

	albums, err := repo.ListAlbums(ctx, "u")
	require.NoError(t, err)
	assert.Len(t, albums, 1, "the stored default album is not listed twice")
}

func TestLocalAlbumRepository_ListPhotos_Sorted(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestLocalRepo()

	photos := []models.Photo{
		{ID: "c", DisplayOrder: 3},
		{ID: "a", DisplayOrder: 1},
		{ID: "b1", DisplayOrder: 2},
		{ID: "b2", DisplayOrder: 2},
	}
	require.NoError(t, repo.photos.Save(ctx, models.AlbumPhotosKey("x"), photos))

	got, err := repo.ListPhotos(ctx, "u", "x")
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, ids)
}

func TestAlbumIndex(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV(0)
	index := NewAlbumIndex(kv)

	albums, err := index.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, albums)

	require.NoError(t, index.Put(ctx, models.Album{ID: "1", Title: "one"}))
	require.NoError(t, index.Put(ctx, models.Album{ID: "2", Title: "two"}))
	require.NoError(t, index.Put(ctx, models.Album{ID: "1", Title: "uno"}))

	albums, err = index.List(ctx)
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "2", albums[0].ID)
	assert.Equal(t, "uno", albums[1].Title)

	_, err = index.Find(ctx, "3")
	assert.ErrorIs(t, err, ErrAlbumNotFound)

	require.NoError(t, kv.Set(ctx, userAlbumsKey, "[{"))
	_, err = index.List(ctx)
	assert.ErrorIs(t, err, ErrCorruptedData)
}
