package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"entrykeeper/internal/app/client/config"
	"entrykeeper/internal/domain/entry"
	"entrykeeper/internal/domain/user"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "EntryKeeper-Client/1.0",
	}, nil
}

// SetToken sets the bearer token used on authenticated requests.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck probes server availability.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status: %d", resp.StatusCode)
	}

	return nil
}

func (h *httpClient) Register(ctx context.Context, login, password string) error {
	req := user.BaseRequest{
		Login:    login,
		Password: password,
	}

	resp, err := h.doRequest(ctx, "POST", "/api/v1/auth/register", req)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, login, password string) (string, error) {
	req := user.BaseRequest{
		Login:    login,
		Password: password,
	}

	resp, err := h.doRequest(ctx, "POST", "/api/v1/auth/login", req)
	if err != nil {
		return "", err
	}

	var loginResp user.LoginResponse
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.token = loginResp.Token
	return loginResp.Token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, "POST", "/api/v1/auth/logout", nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// List fetches the full entry collection.
func (h *httpClient) List(ctx context.Context) ([]entry.Entry, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/v1/entries", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Entries []entry.Entry `json:"entries"`
		Total   int           `json:"total"`
	}

	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Entries, nil
}

// Create submits a new entry and returns it with the server-assigned id.
func (h *httpClient) Create(ctx context.Context, fields entry.Fields) (*entry.Entry, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/v1/entries", fields)
	if err != nil {
		return nil, err
	}

	var created entry.Entry
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// Update overwrites all fields of an existing entry.
func (h *httpClient) Update(ctx context.Context, id string, fields entry.Fields) error {
	resp, err := h.doRequest(ctx, "PUT", "/api/v1/entries/"+id, fields)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// Delete removes an entry by id.
func (h *httpClient) Delete(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, "DELETE", "/api/v1/entries/"+id, nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	h.log.Debug("received response",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		// Error bodies are either problem+json or a bare {"error": ...}.
		var errResp struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			switch {
			case errResp.Detail != "":
				return fmt.Errorf("server error: %s", errResp.Detail)
			case errResp.Title != "":
				return fmt.Errorf("server error: %s", errResp.Title)
			case errResp.Error != "":
				return fmt.Errorf("server error: %s", errResp.Error)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
