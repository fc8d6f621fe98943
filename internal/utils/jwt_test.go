package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "vault-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_VerifiesImmediately(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "alice@example.com", time.Hour, testSignKey, "HS256")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, "HS256")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", parsed.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", "a@b.c", time.Hour, testSignKey, "HS256")
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, "", time.Hour, testSignKey, "HS256")
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, "a@b.c", 0, testSignKey, "HS256")
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, "a@b.c", time.Hour, "", "HS256")
	assert.Error(t, err)
}

func TestGenerateJWTToken_UnknownAlgorithm(t *testing.T) {
	_, err := GenerateJWTToken(testIssuer, "a@b.c", time.Hour, testSignKey, "HS1024")
	require.ErrorIs(t, err, ErrUnknownSigningAlgorithm)
}

func TestGenerateJWTToken_NonHMACAlgorithmRejected(t *testing.T) {
	_, err := GenerateJWTToken(testIssuer, "a@b.c", time.Hour, testSignKey, "RS256")
	require.ErrorIs(t, err, ErrUnknownSigningAlgorithm)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Simulate the clock by issuing a token whose validity window is
	// already in the past.
	now := time.Now().Add(-48 * time.Hour)
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "alice@example.com",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey, testIssuer, "HS256")
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "alice@example.com", time.Hour, testSignKey, "HS256")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-key", testIssuer, "HS256")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("other-service", "alice@example.com", time.Hour, testSignKey, "HS256")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, "HS256")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("definitely.not.a-jwt", testSignKey, testIssuer, "HS256")
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateAndParseJWTToken_AlgorithmPinned(t *testing.T) {
	// A token signed with HS512 must be rejected by a verifier pinned to
	// HS256, regardless of what the token header announces.
	token, err := GenerateJWTToken(testIssuer, "alice@example.com", time.Hour, testSignKey, "HS512")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, "HS256")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: "alice@example.com",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testSignKey, testIssuer, "HS256")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("Bearer")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)

	_, err = ParseBearerToken(strings.TrimSpace(""))
	assert.Error(t, err)
}
