package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when no user matches the provider user id.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAlbumNotFound is returned when an album does not exist, belongs to
	// another user or is inactive.
	ErrAlbumNotFound = errors.New("album was not found")

	// ErrAlbumNotSaved is returned when an INSERT completes without returning
	// the created row.
	ErrAlbumNotSaved = errors.New("album was not saved")
)

// Local key/value store errors.
var (
	// ErrStorageQuota is returned when a write would exceed the store quota.
	// The previous value of the key stays readable.
	ErrStorageQuota = errors.New("local storage quota exceeded")

	// ErrKeyNotFound is returned by [KV.Get] for a missing key.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrCorruptedData is returned when a stored value cannot be decoded.
	ErrCorruptedData = errors.New("stored data is corrupted")

	// ErrUnknownLocalDriver is returned for an unsupported local store driver.
	ErrUnknownLocalDriver = errors.New("unknown local storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
