package models

// AuthResult is what a successful registration or login produces: a session
// token plus the user's encryption salt, which the client needs to derive
// its local encryption key.
type AuthResult struct {
	Token          Token
	EncryptionSalt string
}
