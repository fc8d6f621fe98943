// Package migrations applies the embedded schema migrations with goose.
// Postgres and SQLite need slightly different DDL, so each dialect carries
// its own migration directory; the variant is picked from the driver the
// connection was opened with.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/mlevansky/go-cred-vault/internal/store"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings the schema up to date for the given connection.
func Migrate(db *store.DB) error {
	if db == nil || db.DB == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch db.Driver() {
	case "pgx":
		dialect, dir = "pgx", "postgres"
	case "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", db.Driver())
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
