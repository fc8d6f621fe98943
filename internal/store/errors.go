package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because the email is already present. The mapping comes
	// from the database unique constraint, never from an application-level
	// check-then-insert.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when a lookup by email matches no account.
	ErrUserNotFound = errors.New("no user was found")

	// ErrEntryNotFound is returned when a credential entry is absent or
	// belongs to a different owner. The two cases are deliberately
	// indistinguishable so that one user cannot probe for the existence of
	// another user's entries.
	ErrEntryNotFound = errors.New("password entry was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when an error is detected during
	// multi-row iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
