package models

// AuthResponse is the body returned by the register and login endpoints.
// EncryptionSalt rides along with the token so the client can derive its
// local encryption key without an extra round trip.
type AuthResponse struct {
	AccessToken    string `json:"access_token"`
	TokenType      string `json:"token_type"`
	EncryptionSalt string `json:"encryption_salt"`
}

// MeResponse is the body returned by the /api/me endpoint.
type MeResponse struct {
	Email          string `json:"email"`
	EncryptionSalt string `json:"encryption_salt"`
}

// MessageResponse is a generic confirmation body (e.g. after a delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// GeneratedPasswordResponse is the body returned by the password generator
// endpoint.
type GeneratedPasswordResponse struct {
	Password string `json:"password"`
}
