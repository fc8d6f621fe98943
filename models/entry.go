package models

import "time"

// Entry is a single stored credential. The password payload is encrypted on
// the client before it reaches the server; the server only ever stores the
// ciphertext together with the initialization vector that was used to
// produce it.
type Entry struct {
	// ID is the server-assigned identifier of the entry.
	ID int64 `json:"id"`

	// UserID references the owning user. Every read and write of the entry
	// is filtered by this value.
	UserID int64 `json:"-"`

	// Title is the user-visible name of the entry.
	Title string `json:"title"`

	// Username is the login stored alongside the secret. Optional.
	Username string `json:"username"`

	// EncryptedPassword is the client-side ciphertext. Opaque to the server.
	EncryptedPassword string `json:"encrypted_password"`

	// IV is the initialization vector paired 1:1 with EncryptedPassword.
	// The two are only ever written together.
	IV string `json:"iv"`

	// URL is the site the credential belongs to. Optional.
	URL string `json:"url"`

	// Notes holds free-form user notes. Optional.
	Notes string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "password_entries"
}

// EntryUpdate describes a partial update of an Entry. A nil field means
// "leave untouched"; a non-nil field carries the new value. EncryptedPassword
// and IV must be supplied together or not at all.
type EntryUpdate struct {
	Title             *string `json:"title"`
	Username          *string `json:"username"`
	EncryptedPassword *string `json:"encrypted_password"`
	IV                *string `json:"iv"`
	URL               *string `json:"url"`
	Notes             *string `json:"notes"`
}

// Empty reports whether the update carries no fields at all.
func (u EntryUpdate) Empty() bool {
	return u.Title == nil &&
		u.Username == nil &&
		u.EncryptedPassword == nil &&
		u.IV == nil &&
		u.URL == nil &&
		u.Notes == nil
}
