// Package migrations embeds the database schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

//go:embed local/*.sql
var embedLocalMigrations embed.FS

// Migrate applies the PostgreSQL schema of the server.
func Migrate(db *sql.DB) error {
	return up(db, embedMigrations, "pgx", ".")
}

// MigrateLocal applies the schema of the SQLite key/value store.
func MigrateLocal(db *sql.DB) error {
	return up(db, embedLocalMigrations, "sqlite3", "local")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
