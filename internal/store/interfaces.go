// Package store implements persistence for vault accounts and credential
// entries. The exported interfaces are the contract the service layer
// depends on; the SQL-backed implementations in this package satisfy them
// for PostgreSQL and SQLite.
package store

import (
	"context"

	"github.com/mlevansky/go-cred-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_repositories_mock.go -package=mock

// UserRepository persists vault accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Fails with [ErrEmailAlreadyExists] when the email
	// is taken; uniqueness is enforced by a database constraint, so two
	// concurrent registrations can never both succeed.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its exact email. Fails with
	// [ErrUserNotFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// EntryRepository persists credential entries. Every operation except
// insertion is scoped by the owning user's ID; rows owned by someone else
// behave exactly like absent rows.
type EntryRepository interface {
	ListEntries(ctx context.Context, ownerID int64) ([]models.Entry, error)

	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)

	// FindEntry fails with [ErrEntryNotFound] when the entry is absent or
	// owned by a different user.
	FindEntry(ctx context.Context, entryID, ownerID int64) (models.Entry, error)

	// UpdateEntry applies the non-nil fields of update and refreshes
	// updated_at. Fails with [ErrEntryNotFound] when the entry is absent or
	// owned by a different user.
	UpdateEntry(ctx context.Context, entryID, ownerID int64, update models.EntryUpdate) (models.Entry, error)

	// DeleteEntry reports whether a row was actually deleted.
	DeleteEntry(ctx context.Context, entryID, ownerID int64) (bool, error)
}
