package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mlevansky/go-cred-vault/models"
)

// Token verification failure modes. Callers reject the request identically
// in all three cases; the distinction exists only for logging.
var (
	// ErrTokenExpired means the token was valid once but its expiry
	// timestamp has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid means the signature, issuer, or another claim failed
	// verification.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenMalformed means the raw string could not be parsed as a JWT
	// at all.
	ErrTokenMalformed = errors.New("token is malformed")
)

// ErrUnknownSigningAlgorithm is returned when the configured algorithm name
// does not resolve to a registered HMAC signing method.
var ErrUnknownSigningAlgorithm = errors.New("unknown token signing algorithm")

// GenerateJWTToken creates a signed session token for the given subject
// email.
//
// The token carries the following registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user's email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// The signing algorithm is resolved from its explicitly configured name;
// only the HMAC family is accepted.
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey, algorithm string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	method, err := hmacSigningMethod(algorithm)
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Subject:      subject,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// subject.
//
// Validation includes:
//   - Signature verification, restricted to the configured algorithm name
//     (the algorithm announced in the token header is never trusted).
//   - Issuer (iss) claim check against tokenIssuer.
//   - Expiration (exp) claim presence and check.
//   - Subject (sub) claim presence.
//
// Failures are normalised to [ErrTokenExpired], [ErrTokenMalformed], or
// [ErrTokenInvalid].
func ValidateAndParseJWTToken(tokenString, signKey, tokenIssuer, algorithm string) (models.Token, error) {
	if _, err := hmacSigningMethod(algorithm); err != nil {
		return models.Token{}, err
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{algorithm}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return models.Token{}, ErrTokenMalformed
		default:
			return models.Token{}, ErrTokenInvalid
		}
	}

	if claims.Subject == "" {
		return models.Token{}, ErrTokenInvalid
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return models.Token{
		SignedString: tokenString,
		Subject:      claims.Subject,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(authorizationHeader))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// hmacSigningMethod resolves an algorithm name to its registered HMAC
// signing method. Non-HMAC methods are rejected even if registered.
func hmacSigningMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSigningAlgorithm, algorithm)
	}

	hmacMethod, ok := method.(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an HMAC method", ErrUnknownSigningAlgorithm, algorithm)
	}

	return hmacMethod, nil
}
