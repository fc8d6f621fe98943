package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned by VerifyPassword when the stored encoded
// hash cannot be parsed. It signals data corruption in the credential store,
// not a wrong password.
var ErrMalformedHash = errors.New("malformed argon2 hash encoding")

// Argon2Params captures the tunable cost parameters of the Argon2id
// algorithm. The values in use are embedded in every encoded hash, so stored
// hashes stay verifiable after the process-wide parameters change.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params returns the cost parameters used when configuration
// does not override them: 64 MiB memory, a single pass, four lanes.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      64 * 1024,
		Iterations:  1,
		Parallelism: 4,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// HashPassword derives an Argon2id digest of password combined with the
// externally stored per-user salt and returns it in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 digest>
//
// The salt encoded inside the string is Argon2's own internal salt, freshly
// generated per call; the salt parameter is the vault-level per-user value
// kept in its own database column. Keeping the two separate decouples the
// storage schema from the algorithm internals.
func HashPassword(password, salt string, params Argon2Params) (string, error) {
	internalSalt := make([]byte, params.SaltLength)
	if _, err := rand.Read(internalSalt); err != nil {
		return "", fmt.Errorf("reading random bytes for argon2 salt: %w", err)
	}

	key := argon2.IDKey(
		[]byte(password+salt),
		internalSalt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.Memory,
		params.Iterations,
		params.Parallelism,
		base64.RawStdEncoding.EncodeToString(internalSalt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyPassword recomputes the Argon2id digest of password+salt using the
// parameters embedded in encoded and compares it against the stored digest
// in constant time.
//
// A false result with a nil error means the password is wrong. A non-nil
// error is always [ErrMalformedHash] (possibly wrapped) and means the stored
// value is corrupt.
func VerifyPassword(password, encoded, salt string) (bool, error) {
	params, internalSalt, key, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(password+salt),
		internalSalt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		uint32(len(key)),
	)

	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

// decodeArgon2Hash parses a PHC-format argon2id string into its cost
// parameters, internal salt, and digest.
func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	// argon2.IDKey panics on zero cost parameters, so a corrupt stored hash
	// must be caught here and reported as data corruption instead.
	if params.Memory == 0 || params.Iterations == 0 || params.Parallelism == 0 {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: zero cost parameter in %q", ErrMalformedHash, parts[3])
	}

	internalSalt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if len(internalSalt) == 0 {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: empty salt", ErrMalformedHash)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if len(key) == 0 {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: empty digest", ErrMalformedHash)
	}

	return params, internalSalt, key, nil
}
