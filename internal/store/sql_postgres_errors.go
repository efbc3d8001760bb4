package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPostgresError maps a pgx error onto the package sentinels based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation → [ErrAlreadyExists]
//   - Class 08 connection exceptions, 57P01..57P03 shutdown and startup
//     conditions, 53300 too_many_connections and failed dials →
//     [ErrStorageUnavailable]
//
// Any other error is returned unchanged.
func classifyPostgresError(err error) error {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	code := postgresError(err)
	switch {
	case code == pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)

	case pgerrcode.IsConnectionException(code),
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown,
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.TooManyConnections:
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return err
}
