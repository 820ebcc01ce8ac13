package database

//go:generate go tool sql2fnc -c ../../sql2fnc.yaml -o ../../dist ../../user.sql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"github.com/kalbasit/sql2fnc/example/dist/go/user"
)

// DB bundles the connection with the stores of the generated clients.
type DB struct {
	*sql.DB

	Users *user.Store
}

// Open opens a PostgreSQL connection. The storage functions are PL/pgSQL so
// only postgres:// and postgresql:// URLs are accepted.
func Open(ctx context.Context, dbURL string) (*DB, error) {
	if !strings.HasPrefix(dbURL, "postgres://") && !strings.HasPrefix(dbURL, "postgresql://") {
		return nil, ErrUnsupportedDriver
	}

	sdb, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	if err := sdb.PingContext(ctx); err != nil {
		sdb.Close()

		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return &DB{DB: sdb, Users: user.NewStore(sdb)}, nil
}

// WithTx returns stores scoped to tx.
func (db *DB) WithTx(tx *sql.Tx) *DB {
	return &DB{DB: db.DB, Users: user.NewStore(tx)}
}
