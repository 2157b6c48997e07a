package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-photo-album/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	upsertUser = `INSERT INTO users (line_user_id, display_name, picture_url, last_login_at)
    VALUES ($1, $2, $3, NOW())
    ON CONFLICT (line_user_id) DO UPDATE
    SET display_name = EXCLUDED.display_name,
        picture_url = EXCLUDED.picture_url,
        last_login_at = NOW()
    RETURNING id, line_user_id, display_name, picture_url, is_active, created_at, last_login_at;`

	findUserByLineID = `SELECT id, line_user_id, display_name, picture_url, is_active, created_at, last_login_at
    FROM users
    WHERE line_user_id = $1;`
)

var (
	albumColumns = []string{
		"id", "user_id", "title", "description", "thumbnail_url",
		"photo_count", "created_at", "updated_at",
	}

	photoColumns = []string{
		"id", "album_id", "filename", "file_path", "file_size",
		"mime_type", "width", "height", "display_order", "uploaded_at",
	}
)

func buildListAlbumsQuery(userID string) (string, []any, error) {
	return psql.Select(albumColumns...).
		From("albums").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("updated_at DESC").
		ToSql()
}

func buildInsertAlbumQuery(album models.Album) (string, []any, error) {
	return psql.Insert("albums").
		Columns("user_id", "title", "description", "thumbnail_url", "photo_count").
		Values(album.UserID, album.Title, album.Description, album.ThumbnailURL, album.PhotoCount).
		Suffix("RETURNING " + strings.Join(albumColumns, ", ")).
		ToSql()
}

func buildFindDefaultAlbumQuery(userID string) (string, []any, error) {
	return psql.Select(albumColumns...).
		From("albums").
		Where(sq.Eq{"user_id": userID, "title": models.DefaultAlbumTitle, "is_active": true}).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildAlbumExistsQuery(userID string, albumID int64) (string, []any, error) {
	return psql.Select("1").
		From("albums").
		Where(sq.Eq{"id": albumID, "user_id": userID, "is_active": true}).
		ToSql()
}

// buildInsertPhotosQuery inserts all photos of an album with one statement.
func buildInsertPhotosQuery(albumID int64, photos []models.Photo) (string, []any, error) {
	if len(photos) == 0 {
		return "", nil, fmt.Errorf("%w: no photos to insert", ErrBuildingSQLQuery)
	}

	builder := psql.Insert("photos").
		Columns("album_id", "filename", "file_path", "file_size", "mime_type", "width", "height", "display_order")
	for _, p := range photos {
		builder = builder.Values(albumID, p.Filename, p.FilePath, p.FileSize, p.MimeType, p.Width, p.Height, p.DisplayOrder)
	}

	return builder.ToSql()
}

func buildListPhotosQuery(albumID int64) (string, []any, error) {
	return psql.Select(photoColumns...).
		From("photos").
		Where(sq.Eq{"album_id": albumID}).
		OrderBy("display_order", "id").
		ToSql()
}
