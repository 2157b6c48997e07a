package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-photo-album/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListAlbumsQuery(t *testing.T) {
	query, args, err := buildListAlbumsQuery("U1")

	require.NoError(t, err)
	assert.Contains(t, query, "FROM albums")
	assert.Contains(t, query, "ORDER BY updated_at DESC")
	assert.Contains(t, query, "$2")
	assert.Equal(t, []any{true, "U1"}, args)
}

func Test_buildInsertAlbumQuery(t *testing.T) {
	desc := "d"
	query, args, err := buildInsertAlbumQuery(models.Album{UserID: "U1", Title: "T", Description: &desc, PhotoCount: 6})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO albums"))
	for _, c := range albumColumns {
		assert.Contains(t, query, c)
	}
	require.Len(t, args, 5)
	assert.Equal(t, "U1", args[0])
	assert.Equal(t, 6, args[4])
}

func Test_buildFindDefaultAlbumQuery(t *testing.T) {
	query, args, err := buildFindDefaultAlbumQuery("U1")

	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 1")
	assert.Contains(t, args, models.DefaultAlbumTitle)
	assert.Contains(t, args, "U1")
}

func Test_buildInsertPhotosQuery(t *testing.T) {
	photos := models.DefaultPhotos()

	query, args, err := buildInsertPhotosQuery(3, photos)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO photos"))
	assert.Len(t, args, 8*len(photos))
	assert.Contains(t, query, "$48")
	assert.Equal(t, int64(3), args[0])
}

func Test_buildInsertPhotosQuery_Empty(t *testing.T) {
	_, _, err := buildInsertPhotosQuery(3, nil)

	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildListPhotosQuery(t *testing.T) {
	query, args, err := buildListPhotosQuery(7)

	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY display_order, id")
	assert.Equal(t, []any{int64(7)}, args)
}
