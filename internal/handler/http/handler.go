package http

import (
	"github.com/mlevansky/go-cred-vault/internal/config"
	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/internal/service"
)

// Handler owns the REST surface of the vault. It holds the service layer,
// the server settings it needs at request time, and the login rate limiter.
type Handler struct {
	services *service.Services

	cfg config.Server

	loginLimiter *loginRateLimiter

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler. The error comes from the rate
// limiter's cache initialization only.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	limiter, err := newLoginRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		cfg:          cfg,
		loginLimiter: limiter,
		logger:       logger,
	}, nil
}
