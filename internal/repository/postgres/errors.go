package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/storefront/internal/model"
)

const codeUniqueViolation = "23505"

var uniqueFields = map[string]string{
	"users_name_key":            "name",
	"users_email_key":           "email",
	"users_password_digest_key": "password",
}

// mapUniqueViolation turns a unique violation into a conflict on the field
// the constraint guards. Other errors are returned unchanged.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return model.NewErrConflict(uniqueFields[pgErr.ConstraintName], err)
	}
	return err
}

// queryOne runs query and scans its single row. Zero rows and more than one
// row both yield model.ErrNotFound.
func queryOne[T any](ctx context.Context, db DBTX, scan func(*sql.Rows) (T, error), query string, args ...any) (T, error) {
	var zero T

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, err
		}
		return zero, model.ErrNotFound
	}

	v, err := scan(rows)
	if err != nil {
		return zero, err
	}

	if rows.Next() {
		return zero, fmt.Errorf("expected one row, got more: %w", model.ErrNotFound)
	}

	return v, rows.Err()
}
