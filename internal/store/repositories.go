package store

import "github.com/mlevansky/go-cred-vault/internal/logger"

// Repositories aggregates every repository the service layer needs, wired
// to a single database connection.
type Repositories struct {
	UserRepository  UserRepository
	EntryRepository EntryRepository
}

// NewRepositories constructs all repositories on top of the given
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, logger),
		EntryRepository: NewEntryRepository(db, logger),
	}
}
