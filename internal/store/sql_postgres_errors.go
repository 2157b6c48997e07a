package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.inTx] whether a failed transaction should be
// replayed or abandoned.
type ErrorClassification int

const (
	// NonRetryable failures are returned to the caller as is.
	NonRetryable ErrorClassification = iota
	// Retryable failures replay the whole transaction: the default album and
	// its photos are inserted together, so a partial replay is impossible.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Dropped connections, rolled back
// transactions (serialization failures and deadlocks) and a server that is
// still starting are retryable. Everything else, constraint violations
// included, is not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// postgresError returns the SQLSTATE code carried by err, or "" when err did
// not come from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isForeignKeyViolation reports whether err rejects a row whose owner does
// not exist, e.g. an album of a user that was never upserted.
func isForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation
}
