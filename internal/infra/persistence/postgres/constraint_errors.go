package postgres

import (
	"strings"

	"hobbyexplorer/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Helper functions for constraint error checking. PostgreSQL errors are matched by
// SQLSTATE; other drivers (SQLite in tests) by message.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	if code, ok := pgErrorCode(err); ok {
		return code == pgUniqueViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	if code, ok := pgErrorCode(err); ok {
		return code == pgForeignKeyViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	if code, ok := pgErrorCode(err); ok {
		return code == pgNotNullViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "not null constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	if code, ok := pgErrorCode(err); ok {
		return code == pgCheckViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}

// violationMentions reports whether the violated constraint or column, as named by
// the driver, contains token. PostgreSQL names it in ConstraintName, SQLite in the
// message ("UNIQUE constraint failed: users.email"). pgErr.Detail is not searched:
// it carries the offending value.
func violationMentions(err error, token string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.Contains(strings.ToLower(pgErr.ConstraintName), token)
	}

	return strings.Contains(strings.ToLower(err.Error()), token)
}

func pgErrorCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	return pgErr.Code, true
}
