package store

import (
	"strings"
	"testing"

	"github.com/mlevansky/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func Test_buildUpdateEntryQuery_SingleField(t *testing.T) {
	update := models.EntryUpdate{Title: strPtr("new title")}

	query, args, err := buildUpdateEntryQuery(5, 42, update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update password_entries")
	require.Contains(t, q, "updated_at = current_timestamp")
	require.Contains(t, q, "title = $1")
	require.Contains(t, q, "where")
	require.Contains(t, q, "returning")

	// title value plus the two WHERE params
	require.Len(t, args, 3)
	assert.Equal(t, "new title", args[0])
	assert.Contains(t, args, int64(5))
	assert.Contains(t, args, int64(42))
}

func Test_buildUpdateEntryQuery_UntouchedFieldsAbsent(t *testing.T) {
	update := models.EntryUpdate{Title: strPtr("t")}

	query, _, err := buildUpdateEntryQuery(1, 1, update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range []string{"username =", "encrypted_password =", "iv =", "url =", "notes ="} {
		assert.NotContains(t, q, col, "unset field must not appear in SET clause")
	}
}

func Test_buildUpdateEntryQuery_AllFields(t *testing.T) {
	update := models.EntryUpdate{
		Title:             strPtr("t"),
		Username:          strPtr("u"),
		EncryptedPassword: strPtr("c"),
		IV:                strPtr("iv"),
		URL:               strPtr("https://example.com"),
		Notes:             strPtr("n"),
	}

	query, args, err := buildUpdateEntryQuery(7, 42, update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range []string{"title", "username", "encrypted_password", "iv", "url", "notes", "updated_at"} {
		require.Contains(t, q, col)
	}

	// six field values plus two WHERE params
	require.Len(t, args, 8)
}

func Test_buildUpdateEntryQuery_OwnerScopedWhere(t *testing.T) {
	query, args, err := buildUpdateEntryQuery(5, 42, models.EntryUpdate{Title: strPtr("x")})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "id =")
	require.Contains(t, q, "user_id =")
	assert.Contains(t, args, int64(42), "owner must always appear in args")
}

func Test_buildUpdateEntryQuery_DollarPlaceholders(t *testing.T) {
	query, _, err := buildUpdateEntryQuery(1, 2, models.EntryUpdate{Notes: strPtr("n")})
	require.NoError(t, err)

	assert.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")
}
