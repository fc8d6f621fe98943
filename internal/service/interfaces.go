// Package service contains the security core of the credential vault:
// registration, login, token issuance and verification, owner-scoped entry
// operations, and the stateless password generator. Transport concerns live
// in internal/handler; persistence lives in internal/store.
package service

import (
	"context"

	"github.com/mlevansky/go-cred-vault/models"
)

// AuthService handles account lifecycle and session tokens.
type AuthService interface {
	// Register creates a new account, generating its password salt and
	// encryption salt, and returns a fresh session token. Fails with
	// store.ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, creds models.Credentials) (models.AuthResult, error)

	// Login verifies the credentials and returns a fresh session token.
	// A wrong email and a wrong password both fail with
	// [ErrInvalidCredentials]; callers cannot tell which it was.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error)

	// Authenticate resolves a raw bearer token to the account it was
	// issued for. Any failure (bad signature, expiry, malformed token, or
	// an account deleted since issuance) surfaces as [ErrUnauthorized].
	Authenticate(ctx context.Context, rawToken string) (models.User, error)
}

// EntryService handles credential-entry CRUD, always scoped to the
// authenticated owner.
type EntryService interface {
	ListEntries(ctx context.Context, ownerID int64) ([]models.Entry, error)
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	GetEntry(ctx context.Context, entryID, ownerID int64) (models.Entry, error)
	UpdateEntry(ctx context.Context, entryID, ownerID int64, update models.EntryUpdate) (models.Entry, error)
	DeleteEntry(ctx context.Context, entryID, ownerID int64) error
}

// GeneratorService produces random passwords. It is a stateless utility,
// not part of the security core, but it draws from the same
// cryptographically secure source.
type GeneratorService interface {
	Generate(settings models.GeneratorSettings) (string, error)
}
