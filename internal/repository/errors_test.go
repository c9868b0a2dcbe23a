package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapConstraintError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_businesses_owner_id"}

	if got := mapConstraintError(pgErr); !errors.Is(got, ErrConflict) {
		t.Errorf("expected ErrConflict for SQLSTATE 23505, got %v", got)
	}

	wrapped := fmt.Errorf("insert business: %w", pgErr)
	if got := mapConstraintError(wrapped); !errors.Is(got, ErrConflict) {
		t.Errorf("expected ErrConflict for wrapped 23505, got %v", got)
	}
}

func TestMapConstraintError_PassesThroughOtherErrors(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503"}
	if got := mapConstraintError(fkErr); errors.Is(got, ErrConflict) {
		t.Error("foreign key violation should not map to ErrConflict")
	}

	plain := errors.New("connection refused")
	if got := mapConstraintError(plain); got != plain {
		t.Errorf("expected plain error returned unchanged, got %v", got)
	}
}
