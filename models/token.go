package models

import "time"

// Token is a session token issued at registration or login. It is a
// self-contained signed artifact: nothing about it is persisted server-side,
// and it simply stops verifying once ExpiresAt has passed.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature). This is the only form
	// that leaves the server.
	SignedString string `json:"-"`

	// Subject is the email of the user the token was issued for, extracted
	// from the "sub" claim.
	Subject string `json:"-"`

	// ExpiresAt is the instant after which the token stops verifying.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
