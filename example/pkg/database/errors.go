package database

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kalbasit/sql2fnc/example/dist/go/user"
)

var (
	// ErrUnsupportedDriver is returned when the database URL is not PostgreSQL.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// IsDeadlockError checks if the error is a serialization failure or deadlock.
func IsDeadlockError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}

	return false
}

// IsDuplicateKeyError checks if the error is a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return false
}

// IsNotFoundError checks if a storage function reported a missing row.
func IsNotFoundError(err error) bool {
	return errors.Is(err, user.ErrNotFound)
}

// StatusCode returns the code a storage function attached to err, or 500.
func StatusCode(err error) int {
	var fnErr *user.Error
	if errors.As(err, &fnErr) {
		return fnErr.Code
	}

	return http.StatusInternalServerError
}
