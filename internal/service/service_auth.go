package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlevansky/go-cred-vault/internal/config"
	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/internal/store"
	"github.com/mlevansky/go-cred-vault/internal/utils"
	"github.com/mlevansky/go-cred-vault/models"
)

// saltBytes is the size of the per-user password salt (hex-encoded to twice
// this many characters). encryptionSaltBytes sizes the client-side
// encryption salt.
const (
	saltBytes           = 32
	encryptionSaltBytes = 16
)

// authService is the concrete implementation of AuthService. It owns
// registration, login, and the token-to-identity resolution used by the
// auth middleware. All state is read-only after construction, so the
// service is safe for concurrent use.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// tokenSignKey is the symmetric secret used to sign and verify session
	// tokens.
	tokenSignKey string

	// tokenAlgorithm is the explicitly configured signing algorithm name.
	// Verification accepts this algorithm only.
	tokenAlgorithm string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// argon2Params are the process-wide hashing cost parameters. Hashes
	// created under older parameters stay verifiable because costs are
	// embedded in the encoded hash.
	argon2Params utils.Argon2Params

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	params := utils.DefaultArgon2Params()
	if cfg.Argon2Memory != 0 {
		params.Memory = cfg.Argon2Memory
	}
	if cfg.Argon2Iterations != 0 {
		params.Iterations = cfg.Argon2Iterations
	}
	if cfg.Argon2Parallelism != 0 {
		params.Parallelism = cfg.Argon2Parallelism
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenAlgorithm: cfg.TokenAlgorithm,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		argon2Params:   params,
		logger:         logger,
	}
}

// Register creates a new vault account.
//
// It generates a fresh password salt and encryption salt from the secure
// random source, hashes the password with Argon2id, persists the account,
// and issues a session token for it.
//
// Returns store.ErrEmailAlreadyExists (wrapped) when the email is taken.
// The uniqueness race between two concurrent registrations is resolved by
// the database constraint, so exactly one of them wins.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Msg("registration with empty email or password")
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	salt, err := utils.RandomHex(saltBytes)
	if err != nil {
		log.Err(err).Msg("entropy source failed generating password salt")
		return models.AuthResult{}, fmt.Errorf("generating salt: %w", err)
	}

	encryptionSalt, err := utils.RandomURLSafe(encryptionSaltBytes)
	if err != nil {
		log.Err(err).Msg("entropy source failed generating encryption salt")
		return models.AuthResult{}, fmt.Errorf("generating encryption salt: %w", err)
	}

	passwordHash, err := utils.HashPassword(creds.Password, salt, a.argon2Params)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		Email:          creds.Email,
		PasswordHash:   passwordHash,
		Salt:           salt,
		EncryptionSalt: encryptionSalt,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Str("email", creds.Email).Msg("registration with duplicate email")
			return models.AuthResult{}, err
		}
		log.Err(err).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(created.Email)
	if err != nil {
		log.Err(err).Msg("token issuance after registration failed")
		return models.AuthResult{}, err
	}

	return models.AuthResult{Token: token, EncryptionSalt: created.EncryptionSalt}, nil
}

// Login authenticates an existing account.
//
// An unknown email and a wrong password both produce ErrInvalidCredentials.
// A stored hash that cannot be parsed produces ErrMalformedStoredData and is
// logged loudly: it means the credential store is corrupt.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Msg("login with empty email or password")
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("login with unknown email")
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.VerifyPassword(creds.Password, found.PasswordHash, found.Salt)
	if err != nil {
		// Corrupt stored hash. Loud log, generic error to the caller,
		// never the encoding details.
		log.Error().Err(err).Int64("id", found.UserID).Msg("stored password hash is malformed")
		return models.AuthResult{}, ErrMalformedStoredData
	}
	if !ok {
		log.Debug().Int64("id", found.UserID).Msg("login with wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	token, err := a.issueToken(found.Email)
	if err != nil {
		log.Err(err).Msg("token issuance after login failed")
		return models.AuthResult{}, err
	}

	return models.AuthResult{Token: token, EncryptionSalt: found.EncryptionSalt}, nil
}

// Authenticate resolves a raw bearer token to the account it was issued
// for.
//
// Verification failures are logged with their precise cause (expired,
// malformed, invalid) but all collapse into ErrUnauthorized towards the
// caller, as does a token whose subject no longer resolves to an account.
func (a *authService) Authenticate(ctx context.Context, rawToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(rawToken, a.tokenSignKey, a.tokenIssuer, a.tokenAlgorithm)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrTokenExpired):
			log.Debug().Msg("rejected expired token")
		case errors.Is(err, utils.ErrTokenMalformed):
			log.Debug().Msg("rejected malformed token")
		default:
			log.Debug().Msg("rejected invalid token")
		}
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Msg("token subject no longer resolves to an account")
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Msg("user lookup during authentication failed")
		return models.User{}, fmt.Errorf("user lookup during authentication failed: %w", err)
	}

	return user, nil
}

// issueToken signs a fresh session token for the given subject email.
func (a *authService) issueToken(subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, a.tokenDuration, a.tokenSignKey, a.tokenAlgorithm)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
