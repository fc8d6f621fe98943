package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/mlevansky/go-cred-vault/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, salt, encryption_salt)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, password_hash, salt, encryption_salt, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, salt, encryption_salt, created_at
    FROM users
    WHERE email = $1;`

	listEntries = `SELECT id, user_id, title, username, encrypted_password, iv, url, notes, created_at, updated_at
    FROM password_entries
    WHERE user_id = $1
    ORDER BY id;`

	createEntry = `INSERT INTO password_entries (user_id, title, username, encrypted_password, iv, url, notes)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, user_id, title, username, encrypted_password, iv, url, notes, created_at, updated_at;`

	findEntry = `SELECT id, user_id, title, username, encrypted_password, iv, url, notes, created_at, updated_at
    FROM password_entries
    WHERE id = $1 AND user_id = $2;`

	deleteEntry = `DELETE FROM password_entries
    WHERE id = $1 AND user_id = $2;`
)

// entryColumns is the canonical column list returned by every entry query.
const entryColumns = "id, user_id, title, username, encrypted_password, iv, url, notes, created_at, updated_at"

// buildUpdateEntryQuery builds the dynamic UPDATE for a partial entry
// update. Only non-nil fields of update produce SET clauses; updated_at is
// always refreshed. The WHERE clause pins both the entry ID and the owner,
// so a foreign-owner update matches zero rows.
func buildUpdateEntryQuery(entryID, ownerID int64, update models.EntryUpdate) (string, []any, error) {
	builder := sq.Update("password_entries").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.EncryptedPassword != nil {
		builder = builder.Set("encrypted_password", *update.EncryptedPassword)
	}
	if update.IV != nil {
		builder = builder.Set("iv", *update.IV)
	}
	if update.URL != nil {
		builder = builder.Set("url", *update.URL)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	builder = builder.
		Where(sq.Eq{"id": entryID, "user_id": ownerID}).
		Suffix("RETURNING " + entryColumns)

	return builder.ToSql()
}
