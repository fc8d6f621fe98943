package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mlevansky/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeVaultServer simulates the relevant slice of the REST API: one
// registered account, bearer-token protection on the entry routes.
func newFakeVaultServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	// Go 1.21's ServeMux has no method-prefixed patterns, so routes are
	// registered by path with an explicit method check.
	handle := func(method, path string, h http.HandlerFunc) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
				return
			}
			h(w, r)
		})
	}

	handle(http.MethodPost, "/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Email == "taken@example.com" {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			AccessToken:    "issued-token",
			TokenType:      "bearer",
			EncryptionSalt: "enc-salt",
		})
	})

	handle(http.MethodPost, "/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Password != "correct" {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			AccessToken:    "issued-token",
			TokenType:      "bearer",
			EncryptionSalt: "enc-salt",
		})
	})

	requireToken := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer issued-token" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return false
		}
		return true
	}

	handle(http.MethodGet, "/api/passwords", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Entry{{ID: 1, Title: "stored"}})
	})

	handle(http.MethodPut, "/api/passwords/99", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		http.Error(w, "Password not found", http.StatusNotFound)
	})

	handle(http.MethodPost, "/api/generate-password", func(w http.ResponseWriter, r *http.Request) {
		var settings models.GeneratorSettings
		require.NoError(t, json.NewDecoder(r.Body).Decode(&settings))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.GeneratedPasswordResponse{Password: "aB3$aB3$"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestHTTPAPIClient_Register(t *testing.T) {
	srv := newFakeVaultServer(t)
	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	auth, err := client.Register(context.Background(), models.Credentials{
		Email:    "user@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "issued-token", auth.AccessToken)
	assert.Equal(t, "enc-salt", auth.EncryptionSalt)
	assert.Equal(t, "issued-token", client.Token(), "token must be stored for later requests")
}

func TestHTTPAPIClient_Register_Conflict(t *testing.T) {
	srv := newFakeVaultServer(t)
	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := client.Register(context.Background(), models.Credentials{
		Email:    "taken@example.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestHTTPAPIClient_Login_Unauthorized(t *testing.T) {
	srv := newFakeVaultServer(t)
	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := client.Login(context.Background(), models.Credentials{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, client.Token(), "failed login must not store a token")
}

func TestHTTPAPIClient_ListEntries(t *testing.T) {
	srv := newFakeVaultServer(t)
	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := client.ListEntries(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized, "request before login must be rejected")

	_, err = client.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "correct"})
	require.NoError(t, err)

	entries, err := client.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "stored", entries[0].Title)
}

func TestHTTPAPIClient_UpdateEntry_NotFound(t *testing.T) {
	srv := newFakeVaultServer(t)
	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})
	client.SetToken("issued-token")

	title := "renamed"
	_, err := client.UpdateEntry(context.Background(), 99, models.EntryUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPAPIClient_GeneratePassword(t *testing.T) {
	srv := newFakeVaultServer(t)
	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	password, err := client.GeneratePassword(context.Background(), models.DefaultGeneratorSettings())
	require.NoError(t, err)
	assert.Equal(t, "aB3$aB3$", password)
}
