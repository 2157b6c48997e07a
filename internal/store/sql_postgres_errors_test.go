package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	pg := func(code string) error {
		return fmt.Errorf("insert album: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "bad connection", err: fmt.Errorf("exec: %w", driver.ErrBadConn), want: Retryable},
		{name: "connection failure", err: pg(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pg(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pg(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "starting up", err: pg(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pg(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "foreign key violation", err: pg(pgerrcode.ForeignKeyViolation), want: NonRetryable},
		{name: "undefined table", err: pg(pgerrcode.UndefinedTable), want: NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestInsertAlbumError_UnknownOwner(t *testing.T) {
	err := insertAlbumError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NotErrorIs(t, err, ErrExecutingStatement)
}
