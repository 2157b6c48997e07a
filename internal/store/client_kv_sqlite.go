package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/migrations"
)

const (
	sqliteGetValue  = `SELECT value FROM kv WHERE key = ?;`
	sqliteUsedBytes = `SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB))), 0) FROM kv WHERE key <> ?;`
	sqliteUpsert    = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
    ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP;`
	sqliteRemove = `DELETE FROM kv WHERE key = ?;`
	sqliteKeys   = `SELECT key FROM kv ORDER BY key;`
)

// sqliteKV is the persistent [KV] backed by a single SQLite table.
type sqliteKV struct {
	db     *sql.DB
	quota  int64
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if needed) the SQLite file at cfg.DSN,
// migrates the kv table and returns the store.
func NewConnectSQLite(ctx context.Context, cfg config.Local, log *logger.Logger) (KV, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// one writer keeps quota checks and upserts serialized
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}

	if err = migrations.MigrateLocal(conn); err != nil {
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &sqliteKV{db: conn, quota: cfg.QuotaBytes, logger: log}, nil
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, sqliteGetValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, nil
}

// Set checks the quota and writes the value in one transaction.
func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if s.quota > 0 {
		var used int64
		if err := tx.QueryRowContext(ctx, sqliteUsedBytes, key).Scan(&used); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if used+entrySize(key, value) > s.quota {
			s.logger.Warn().
				Str("func", "sqliteKV.Set").
				Str("key", key).
				Int64("used", used).
				Int64("quota", s.quota).
				Msg("local storage quota exceeded")
			return ErrStorageQuota
		}
	}

	if _, err := tx.ExecContext(ctx, sqliteUpsert, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *sqliteKV) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, sqliteRemove, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteKV) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, sqliteKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, 16)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Estimate implements [Estimator].
func (s *sqliteKV) Estimate(ctx context.Context) (int64, int64, error) {
	if s.quota <= 0 {
		return 0, 0, ErrQuotaUnknown
	}

	var used int64
	// an empty key never exists, so every entry is counted
	if err := s.db.QueryRowContext(ctx, sqliteUsedBytes, "").Scan(&used); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return used, s.quota, nil
}

func (s *sqliteKV) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
