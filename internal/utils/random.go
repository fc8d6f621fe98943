package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

// ErrEmptyCharset is returned by RandomChoice when called with an empty
// charset.
var ErrEmptyCharset = errors.New("charset must not be empty")

// RandomHex returns numBytes of cryptographically secure random data encoded
// as a lowercase hex string (2*numBytes characters).
//
// An error means the system entropy source failed; callers must treat that
// as fatal and never substitute a weaker source.
func RandomHex(numBytes int) (string, error) {
	buf := make([]byte, numBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// RandomURLSafe returns numBytes of cryptographically secure random data
// encoded with the unpadded URL-safe base64 alphabet.
func RandomURLSafe(numBytes int) (string, error) {
	buf := make([]byte, numBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// RandomChoice returns a single uniformly chosen byte from charset using the
// cryptographically secure source.
func RandomChoice(charset string) (byte, error) {
	if len(charset) == 0 {
		return 0, ErrEmptyCharset
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("reading random index: %w", err)
	}

	return charset[n.Int64()], nil
}

// RandomIndex returns a uniformly chosen index in [0, max) using the
// cryptographically secure source.
func RandomIndex(max int) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be positive")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("reading random index: %w", err)
	}

	return int(n.Int64()), nil
}
