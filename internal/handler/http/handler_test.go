package http

import (
	"context"
	"testing"
	"time"

	"github.com/mlevansky/go-cred-vault/internal/config"
	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/internal/service"
	"github.com/mlevansky/go-cred-vault/models"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn     func(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	authenticateFn func(ctx context.Context, rawToken string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) Authenticate(ctx context.Context, rawToken string) (models.User, error) {
	return m.authenticateFn(ctx, rawToken)
}

// mockEntryService implements service.EntryService for unit tests.
type mockEntryService struct {
	listFn   func(ctx context.Context, ownerID int64) ([]models.Entry, error)
	createFn func(ctx context.Context, entry models.Entry) (models.Entry, error)
	getFn    func(ctx context.Context, entryID, ownerID int64) (models.Entry, error)
	updateFn func(ctx context.Context, entryID, ownerID int64, update models.EntryUpdate) (models.Entry, error)
	deleteFn func(ctx context.Context, entryID, ownerID int64) error
}

func (m *mockEntryService) ListEntries(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockEntryService) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	return m.createFn(ctx, entry)
}

func (m *mockEntryService) GetEntry(ctx context.Context, entryID, ownerID int64) (models.Entry, error) {
	return m.getFn(ctx, entryID, ownerID)
}

func (m *mockEntryService) UpdateEntry(ctx context.Context, entryID, ownerID int64, update models.EntryUpdate) (models.Entry, error) {
	return m.updateFn(ctx, entryID, ownerID, update)
}

func (m *mockEntryService) DeleteEntry(ctx context.Context, entryID, ownerID int64) error {
	return m.deleteFn(ctx, entryID, ownerID)
}

// testServerConfig returns server settings generous enough that throttling
// and deadlines never interfere with a test unless it asks for them.
func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  30 * time.Second,
		LoginRateLimit:  1000,
		LoginRateWindow: time.Minute,
	}
}

// newTestHandler builds a Handler around the given mocks. The generator
// service is always the real one: it is stateless and fast.
func newTestHandler(t *testing.T, auth *mockAuthService, entries *mockEntryService) *Handler {
	t.Helper()

	services := &service.Services{
		AuthService:      auth,
		EntryService:     entries,
		GeneratorService: service.NewGeneratorService(),
	}

	h, err := NewHandler(services, testServerConfig(), logger.Nop())
	require.NoError(t, err)

	return h
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockEntryService{})

	require.NotNil(t, h)
	require.NotNil(t, h.loginLimiter)
}
