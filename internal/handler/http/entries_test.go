package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mlevansky/go-cred-vault/internal/service"
	"github.com/mlevansky/go-cred-vault/internal/store"
	"github.com/mlevansky/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ownerAuth authenticates every request as user 7.
func ownerAuth() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(context.Context, string) (models.User, error) {
			return models.User{UserID: 7, Email: "user@example.com"}, nil
		},
	}
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func TestHandler_ListEntries(t *testing.T) {
	entries := &mockEntryService{
		listFn: func(_ context.Context, ownerID int64) ([]models.Entry, error) {
			require.Equal(t, int64(7), ownerID, "list must be scoped to the authenticated owner")
			return []models.Entry{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}}, nil
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodGet, "/api/passwords", nil))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}

func TestHandler_ListEntries_EmptyVaultIsEmptyArray(t *testing.T) {
	entries := &mockEntryService{
		listFn: func(context.Context, int64) ([]models.Entry, error) {
			return nil, nil
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodGet, "/api/passwords", nil))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandler_CreateEntry(t *testing.T) {
	entries := &mockEntryService{
		createFn: func(_ context.Context, entry models.Entry) (models.Entry, error) {
			require.Equal(t, int64(7), entry.UserID, "owner must come from the token, not the body")
			entry.ID = 5
			return entry, nil
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodPost, "/api/passwords",
		strings.NewReader(`{"title":"example","encrypted_password":"Y2lwaGVy","iv":"aXY"}`)))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.ID)
	assert.Equal(t, "example", body.Title)
}

func TestHandler_CreateEntry_MissingFields(t *testing.T) {
	entries := &mockEntryService{
		createFn: func(context.Context, models.Entry) (models.Entry, error) {
			return models.Entry{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodPost, "/api/passwords",
		strings.NewReader(`{"title":"no ciphertext"}`)))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpdateEntry(t *testing.T) {
	entries := &mockEntryService{
		updateFn: func(_ context.Context, entryID, ownerID int64, update models.EntryUpdate) (models.Entry, error) {
			require.Equal(t, int64(5), entryID)
			require.Equal(t, int64(7), ownerID)
			require.NotNil(t, update.Title)
			require.Nil(t, update.Username, "absent fields must stay nil")
			return models.Entry{ID: 5, Title: *update.Title}, nil
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodPut, "/api/passwords/5",
		strings.NewReader(`{"title":"renamed"}`)))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "renamed", body.Title)
}

func TestHandler_UpdateEntry_ForeignOwnerIsNotFound(t *testing.T) {
	entries := &mockEntryService{
		updateFn: func(context.Context, int64, int64, models.EntryUpdate) (models.Entry, error) {
			return models.Entry{}, store.ErrEntryNotFound
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodPut, "/api/passwords/99",
		strings.NewReader(`{"title":"hijack"}`)))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_UpdateEntry_UnpairedCipherFields(t *testing.T) {
	entries := &mockEntryService{
		updateFn: func(context.Context, int64, int64, models.EntryUpdate) (models.Entry, error) {
			return models.Entry{}, service.ErrUnpairedCipherUpdate
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodPut, "/api/passwords/5",
		strings.NewReader(`{"encrypted_password":"bmV3"}`)))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpdateEntry_InvalidID(t *testing.T) {
	h := newTestHandler(t, ownerAuth(), &mockEntryService{})

	req := authorized(httptest.NewRequest(http.MethodPut, "/api/passwords/not-a-number",
		strings.NewReader(`{"title":"x"}`)))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteEntry(t *testing.T) {
	entries := &mockEntryService{
		deleteFn: func(_ context.Context, entryID, ownerID int64) error {
			require.Equal(t, int64(5), entryID)
			require.Equal(t, int64(7), ownerID)
			return nil
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodDelete, "/api/passwords/5", nil))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password deleted successfully")
}

func TestHandler_DeleteEntry_NotFound(t *testing.T) {
	entries := &mockEntryService{
		deleteFn: func(context.Context, int64, int64) error {
			return store.ErrEntryNotFound
		},
	}
	h := newTestHandler(t, ownerAuth(), entries)

	req := authorized(httptest.NewRequest(http.MethodDelete, "/api/passwords/5", nil))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
