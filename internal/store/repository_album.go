// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/models"
)

// albumRepository is the PostgreSQL-backed [AlbumRepository] used for every
// user except the demo user.
type albumRepository struct {
	*DB
	logger *logger.Logger
}

// NewAlbumRepository constructs the remote [AlbumRepository].
func NewAlbumRepository(db *DB, logger *logger.Logger) AlbumRepository {
	logger.Debug().Msg("creating album repository")
	return &albumRepository{
		DB:     db,
		logger: logger,
	}
}

// ListAlbums returns the active albums of userID ordered by updated_at DESC.
func (r *albumRepository) ListAlbums(ctx context.Context, userID string) ([]models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAlbumsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "albumRepository.ListAlbums").
			Str("user_id", userID).
			Msg("failed to execute query for listing albums")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	albums := make([]models.Album, 0, 8)
	for rows.Next() {
		var album models.Album
		if err := scanAlbum(rows, &album); err != nil {
			log.Err(err).
				Str("func", "albumRepository.ListAlbums").
				Str("user_id", userID).
				Msg("failed to scan album row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		albums = append(albums, album)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return albums, nil
}

// CreateAlbum inserts an album and returns the stored row.
func (r *albumRepository) CreateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAlbumQuery(album)
	if err != nil {
		return models.Album{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Album
	if err := scanAlbum(r.DB.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).
			Str("func", "albumRepository.CreateAlbum").
			Str("user_id", album.UserID).
			Msg("failed to insert album")
		return models.Album{}, insertAlbumError(err)
	}

	log.Info().
		Str("func", "albumRepository.CreateAlbum").
		Str("album_id", created.ID).
		Msg("album created")

	return created, nil
}

// FindDefaultAlbum looks the default album up by its fixed title.
func (r *albumRepository) FindDefaultAlbum(ctx context.Context, userID string) (models.Album, error) {
	query, args, err := buildFindDefaultAlbumQuery(userID)
	if err != nil {
		return models.Album{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var album models.Album
	if err := scanAlbum(r.DB.QueryRowContext(ctx, query, args...), &album); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Album{}, ErrAlbumNotFound
		}
		return models.Album{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return album, nil
}

// CreateAlbumWithPhotos inserts the album and all its photos in one
// transaction. Either both are stored or neither.
func (r *albumRepository) CreateAlbumWithPhotos(ctx context.Context, album models.Album, photos []models.Photo) (models.Album, error) {
	log := logger.FromContext(ctx)

	albumQuery, albumArgs, err := buildInsertAlbumQuery(album)
	if err != nil {
		return models.Album{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Album
	err = r.DB.inTx(ctx, func(tx *sql.Tx) error {
		if err := scanAlbum(tx.QueryRowContext(ctx, albumQuery, albumArgs...), &created); err != nil {
			return insertAlbumError(err)
		}

		if len(photos) == 0 {
			return nil
		}

		albumID, err := strconv.ParseInt(created.ID, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: unexpected album id %q", ErrAlbumNotSaved, created.ID)
		}

		photosQuery, photosArgs, err := buildInsertPhotosQuery(albumID, photos)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, photosQuery, photosArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "albumRepository.CreateAlbumWithPhotos").
			Str("user_id", album.UserID).
			Int("photos_count", len(photos)).
			Msg("failed to create album with photos")
		return models.Album{}, err
	}

	return created, nil
}

// ListPhotos returns the photos of albumID if it is an active album of userID.
func (r *albumRepository) ListPhotos(ctx context.Context, userID, albumID string) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	id, err := strconv.ParseInt(albumID, 10, 64)
	if err != nil {
		return nil, ErrAlbumNotFound
	}

	existsQuery, existsArgs, err := buildAlbumExistsQuery(userID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	if err := r.DB.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlbumNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListPhotosQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "albumRepository.ListPhotos").
			Str("album_id", albumID).
			Msg("failed to execute query for listing photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0, 16)
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.AlbumID, &p.Filename, &p.FilePath, &p.FileSize,
			&p.MimeType, &p.Width, &p.Height, &p.DisplayOrder, &p.UploadedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return photos, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlbum(row rowScanner, a *models.Album) error {
	return row.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.ThumbnailURL,
		&a.PhotoCount, &a.CreatedAt, &a.UpdatedAt)
}

func insertAlbumError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAlbumNotSaved
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
