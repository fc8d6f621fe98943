package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mlevansky/go-cred-vault/models"
)

// HTTPClientConfig configures the resty-backed API client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs an APIClient speaking HTTP/JSON to the
// vault server.
func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request returns a request builder with the JSON content type and, when a
// token is stored, the bearer authorization header.
func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}

func (h *httpAPIClient) Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.request(ctx).
		SetBody(creds).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register decode response: %w", err)
	}

	h.SetToken(auth.AccessToken)
	return auth, nil
}

func (h *httpAPIClient) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.request(ctx).
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login decode response: %w", err)
	}

	h.SetToken(auth.AccessToken)
	return auth, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.MeResponse, error) {
	resp, err := h.request(ctx).Get("/api/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	var me models.MeResponse
	if err = json.Unmarshal(resp.Body(), &me); err != nil {
		return models.MeResponse{}, fmt.Errorf("me decode response: %w", err)
	}

	return me, nil
}

func (h *httpAPIClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	resp, err := h.request(ctx).Get("/api/passwords")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.Entry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("list entries decode response: %w", err)
	}

	return entries, nil
}

func (h *httpAPIClient) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	resp, err := h.request(ctx).
		SetBody(entry).
		Post("/api/passwords")
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	var created models.Entry
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Entry{}, fmt.Errorf("create entry decode response: %w", err)
	}

	return created, nil
}

func (h *httpAPIClient) UpdateEntry(ctx context.Context, entryID int64, update models.EntryUpdate) (models.Entry, error) {
	resp, err := h.request(ctx).
		SetBody(update).
		Put(fmt.Sprintf("/api/passwords/%d", entryID))
	if err != nil {
		return models.Entry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	var updated models.Entry
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Entry{}, fmt.Errorf("update entry decode response: %w", err)
	}

	return updated, nil
}

func (h *httpAPIClient) DeleteEntry(ctx context.Context, entryID int64) error {
	resp, err := h.request(ctx).
		Delete(fmt.Sprintf("/api/passwords/%d", entryID))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) GeneratePassword(ctx context.Context, settings models.GeneratorSettings) (string, error) {
	resp, err := h.request(ctx).
		SetBody(settings).
		Post("/api/generate-password")
	if err != nil {
		return "", fmt.Errorf("generate password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var generated models.GeneratedPasswordResponse
	if err = json.Unmarshal(resp.Body(), &generated); err != nil {
		return "", fmt.Errorf("generate password decode response: %w", err)
	}

	return generated.Password, nil
}
