package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup by id or email matches no
	// document.
	ErrNotFound = errors.New("document was not found")

	// ErrAlreadyExists is returned when the store rejects an insert because
	// of a uniqueness constraint.
	ErrAlreadyExists = errors.New("document already exists")

	// ErrStorageUnavailable is returned when the store cannot be reached:
	// the connection is refused, lost or timed out.
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrUnknownDriver is returned by [NewStorages] for a driver name it
	// cannot open.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a store operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a find
	// against the store fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when decoding result rows or documents
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
