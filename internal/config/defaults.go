package config

import "time"

// defaultConfig returns the built-in fallback values merged below every
// other configuration source. Secrets have no defaults on purpose: the
// signing key and algorithm must always come from the operator.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:       "go-cred-vault",
			TokenDuration:     DefaultTokenDuration,
			Argon2Memory:      64 * 1024,
			Argon2Iterations:  1,
			Argon2Parallelism: 4,
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8080",
			RequestTimeout:  30 * time.Second,
			LoginRateLimit:  5,
			LoginRateWindow: time.Minute,
		},
	}
}
