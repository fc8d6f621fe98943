package service

import (
	"github.com/mlevansky/go-cred-vault/internal/config"
	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/internal/store"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	AuthService
	EntryService
	GeneratorService
}

// NewServices wires the service layer to the given repositories and
// application config.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(repos.UserRepository, cfg, logger),
		EntryService:     NewEntryService(repos.EntryRepository, logger),
		GeneratorService: NewGeneratorService(),
	}
}
