package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes to domain sentinels. A dangling
// project_id surfaces as not-found; out-of-range timestamps and durations
// that slipped past service validation surface as validation errors.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"22008": domain.ErrValidation,    // datetime_field_overflow
	"22003": domain.ErrValidation,    // numeric_value_out_of_range
}

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and id. id 0 means the row has no id yet (insert, lookup by name).
// Context errors are wrapped but never mapped.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != 0 {
		subject = fmt.Sprintf("%s %d", entity, id)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := pgCodeErrors[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s (%s): %w", subject, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s: %w", subject, sentinel)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}
