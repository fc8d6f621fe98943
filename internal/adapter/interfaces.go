// Package adapter provides a typed client for the credential-vault REST
// API.
//
// The primary abstraction is [APIClient], which decouples callers (CLI
// tooling, integration tests, sibling services) from the HTTP details. The
// package ships a resty-backed implementation ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mlevansky/go-cred-vault/models"
)

// APIClient defines typed access to the vault server. Implementations are
// responsible for serialisation, bearer-token management, and mapping
// transport-level errors to the sentinel values defined in this package.
type APIClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Register and Login call it automatically on
	// success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and returns the server's auth response.
	// Returns [ErrConflict] (wrapped) when the email is already registered.
	Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Login authenticates and returns the server's auth response. Returns
	// [ErrUnauthorized] (wrapped) on bad credentials and
	// [ErrTooManyRequests] when the login budget is exhausted.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Me returns the authenticated account's email and encryption salt.
	Me(ctx context.Context) (models.MeResponse, error)

	// ListEntries returns every credential entry owned by the
	// authenticated account.
	ListEntries(ctx context.Context) ([]models.Entry, error)

	// CreateEntry stores a new credential entry and returns it with
	// server-assigned fields populated.
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)

	// UpdateEntry applies a partial update and returns the new state.
	// Returns [ErrNotFound] (wrapped) when the entry does not exist or
	// belongs to another account.
	UpdateEntry(ctx context.Context, entryID int64, update models.EntryUpdate) (models.Entry, error)

	// DeleteEntry removes an entry. Returns [ErrNotFound] (wrapped) when
	// the entry does not exist or belongs to another account.
	DeleteEntry(ctx context.Context, entryID int64) error

	// GeneratePassword asks the server for a random password built per the
	// given settings.
	GeneratePassword(ctx context.Context, settings models.GeneratorSettings) (string, error)
}
