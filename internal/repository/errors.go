package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes for constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// ValidationError is a storage constraint violation that a client can fix.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Messages, "; ")
}

var constraintMessages = map[string]string{
	"users_email_address_key":       "email address must be unique",
	"courses_title_not_empty":       "The course title cannot be empty",
	"courses_description_not_empty": "The course description cannot be empty",
	"courses_user_id_fkey":          "course owner must reference an existing user",
}

// translateError turns constraint violations into a ValidationError and wraps
// everything else as a db error.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("db error: %w", err)
	}
	switch pgErr.Code {
	case pgUniqueViolation, pgCheckViolation, pgForeignKeyViolation:
		msg, ok := constraintMessages[pgErr.ConstraintName]
		if !ok {
			msg = pgErr.Message
		}
		return &ValidationError{Messages: []string{msg}}
	case pgNotNullViolation:
		return &ValidationError{Messages: []string{"Please provide a value for " + pgErr.ColumnName}}
	}
	return fmt.Errorf("db error: %w", err)
}

// ErrNotFound is returned by mutations that target a row that does not exist.
var ErrNotFound = errors.New("record not found")
