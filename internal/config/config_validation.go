package config

// supportedTokenAlgorithms lists the signing algorithm names the verifier is
// allowed to accept. Pinning the list here (rather than trusting the token
// header) blocks algorithm-confusion attacks.
var supportedTokenAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. A failed validation aborts the process before any
// listener is opened.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if _, ok := supportedTokenAlgorithms[cfg.App.TokenAlgorithm]; !ok {
		return ErrUnknownTokenAlgorithm
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}
