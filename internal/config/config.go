package config

import (
	"time"
)

// DefaultTokenDuration is the fixed validity window of issued session
// tokens. It is deliberately a constant rather than a tunable: clients are
// expected to re-authenticate daily.
const DefaultTokenDuration = 24 * time.Hour

// StructuredConfig is the top-level configuration container for the
// credential-vault server. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults (in that priority order).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing material and
	// password-hashing cost parameters.
	App App `envPrefix:"APP_" json:"app"`

	// Storage holds the persistence backend settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Server holds network address, timeout, and throttling settings for
	// the HTTP server.
	Server Server `envPrefix:"SERVER_" json:"server"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values that control token
// signing and password hashing. All fields are read once at startup and
// never mutated afterwards.
type App struct {
	// TokenSignKey is the symmetric secret used to sign and verify session
	// tokens. Required; the process refuses to start without it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenAlgorithm is the explicit JWT signing algorithm name (HS256,
	// HS384 or HS512). Required. Verification accepts only this algorithm,
	// never whatever the token header announces.
	// Env: APP_TOKEN_ALGORITHM
	TokenAlgorithm string `env:"TOKEN_ALGORITHM" json:"token_algorithm"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer"`

	// TokenDuration is the validity window of issued tokens. Not exposed
	// through the environment; always DefaultTokenDuration.
	TokenDuration time.Duration `json:"-"`

	// Argon2Memory is the Argon2id memory cost in KiB.
	// Env: APP_ARGON2_MEMORY
	Argon2Memory uint32 `env:"ARGON2_MEMORY" json:"argon2_memory"`

	// Argon2Iterations is the Argon2id time cost.
	// Env: APP_ARGON2_ITERATIONS
	Argon2Iterations uint32 `env:"ARGON2_ITERATIONS" json:"argon2_iterations"`

	// Argon2Parallelism is the Argon2id lane count.
	// Env: APP_ARGON2_PARALLELISM
	Argon2Parallelism uint8 `env:"ARGON2_PARALLELISM" json:"argon2_parallelism"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" scheme selects
	// the pgx driver; anything else is treated as an SQLite file path for
	// local development.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Server holds network and throttling settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"-"`

	// LoginRateLimit is the number of login attempts allowed per client
	// address within LoginRateWindow.
	// Env: SERVER_LOGIN_RATE_LIMIT
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT" json:"login_rate_limit"`

	// LoginRateWindow is the fixed window used by the login rate limiter.
	// Env: SERVER_LOGIN_RATE_WINDOW
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW" json:"-"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (first source
// to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
