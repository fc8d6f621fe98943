package models

import "time"

// User represents a vault account. It carries the authentication material
// produced at registration and the encryption salt handed back to the client
// for local key derivation.
//
// PasswordHash and Salt must never leave the server process; they are
// excluded from JSON serialization.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique account identifier. Matching is case-sensitive,
	// exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the encoded Argon2id digest of the user's password
	// combined with Salt. The encoding embeds the cost parameters, so the
	// hash stays verifiable after parameter changes.
	PasswordHash string `json:"-"`

	// Salt is the random per-user value mixed into the password before
	// hashing. Generated once at registration, never reused across users.
	Salt string `json:"-"`

	// EncryptionSalt is a second, unrelated random value returned to the
	// client for deriving a local encryption key. It takes no part in
	// server-side authentication.
	EncryptionSalt string `json:"encryption_salt"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the email/password pair submitted at registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
