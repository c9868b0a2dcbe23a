package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert would violate a uniqueness rule,
// e.g. a second business for the same owner.
var ErrConflict = errors.New("conflict")

// mapConstraintError translates a unique violation (SQLSTATE 23505) into
// ErrConflict. Other errors pass through unchanged.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}
