package data

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
)

const uniqueViolationCode = "23505"

// handleError translates driver errors into the service-level
// taxonomy. Unique-constraint violations are the enforcement point
// for the one-enrollment-per-course and one-attempt-per-quiz
// invariants, so they must surface as ErrAlreadyExists rather than
// as an opaque fault.
func handleError(err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode:
		return errdefs.ErrAlreadyExists
	case errors.Is(err, pgx.ErrNoRows):
		return errdefs.ErrNotFound
	default:
		return fmt.Errorf("repository error: %w", err)
	}
}
