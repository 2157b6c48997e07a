package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user upserts and lookups against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUser inserts a user on first login or refreshes display name,
// picture and last_login_at on every later login. The returned user carries
// the database view including is_active.
//
// Error handling:
//   - PostgreSQL not_null_violation (23502) → wrapped as "invalid user".
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertUser, user.LineUserID, user.DisplayName, user.PictureURL)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation:
			return models.User{}, fmt.Errorf("invalid user: %w", err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.User
	if err := scanUser(row, &saved); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindUserByLineID returns the user registered with the given provider id.
//
// Error handling:
//   - no row or PostgreSQL no_data_found (P0002) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLineID(ctx context.Context, lineUserID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByLineID, lineUserID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLineID").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.User{}, ErrNoUserWasFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var found models.User
	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLineID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func scanUser(row *sql.Row, u *models.User) error {
	return row.Scan(&u.UserID, &u.LineUserID, &u.DisplayName, &u.PictureURL, &u.IsActive, &u.CreatedAt, &u.LastLoginAt)
}
