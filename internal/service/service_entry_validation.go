package service

import "github.com/mlevansky/go-cred-vault/models"

// validateNewEntry checks the fields a stored entry cannot live without:
// the owner, a title, the ciphertext, and its IV.
func validateNewEntry(entry models.Entry) error {
	if entry.UserID == 0 {
		return ErrInvalidDataProvided
	}
	if entry.Title == "" || entry.EncryptedPassword == "" || entry.IV == "" {
		return ErrInvalidDataProvided
	}

	return nil
}

// validateEntryUpdate enforces the pairing invariant between the
// ciphertext and its IV: a new ciphertext is unreadable under the old IV,
// so the two may only change together.
func validateEntryUpdate(update models.EntryUpdate) error {
	if (update.EncryptedPassword == nil) != (update.IV == nil) {
		return ErrUnpairedCipherUpdate
	}

	return nil
}
