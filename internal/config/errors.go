package config

import "errors"

var (
	// ErrMissingTokenSignKey is returned when no token signing key was
	// provided by any configuration source. The server must not start
	// without one.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrUnknownTokenAlgorithm is returned when the configured signing
	// algorithm is absent or not one of the supported HMAC family names.
	ErrUnknownTokenAlgorithm = errors.New("token algorithm must be one of HS256, HS384, HS512")

	// ErrMissingDatabaseDSN is returned when no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
