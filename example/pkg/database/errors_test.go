package database_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kalbasit/sql2fnc/example/dist/go/user"
	"github.com/kalbasit/sql2fnc/example/pkg/database"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	notFound := &user.Error{Message: "Item not exist", Code: http.StatusNotFound}

	if !database.IsNotFoundError(fmt.Errorf("delete: %w", notFound)) {
		t.Error("expected a 404 from the storage function to be not found")
	}

	if database.IsNotFoundError(errors.New("boom")) {
		t.Error("unexpected not found")
	}

	if got := database.StatusCode(notFound); got != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, got)
	}

	if got := database.StatusCode(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("expected %d, got %d", http.StatusInternalServerError, got)
	}

	if !database.IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}) {
		t.Error("expected 23505 to be a duplicate key error")
	}

	if !database.IsDeadlockError(&pgconn.PgError{Code: "40P01"}) {
		t.Error("expected 40P01 to be a deadlock")
	}
}

func TestOpenRejectsOtherDrivers(t *testing.T) {
	t.Parallel()

	for _, url := range []string{"sqlite:/tmp/db", "mysql://root@/db"} {
		if _, err := database.Open(t.Context(), url); !errors.Is(err, database.ErrUnsupportedDriver) {
			t.Errorf("%s: expected ErrUnsupportedDriver, got %v", url, err)
		}
	}
}
