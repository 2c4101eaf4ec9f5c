// Package client wires the CLI-side application: configuration, the
// HTTP client for the server API, the local snapshot cache and the
// admin/guest workflow objects built on top of them.
package client

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"entrykeeper/internal/app/client/config"
	"entrykeeper/internal/app/client/manager"
	"entrykeeper/internal/app/client/viewer"
)

type App struct {
	config        *config.Config
	log           *slog.Logger
	httpClient    *httpClient
	cache         Cache
	authenticated bool
	mu            sync.Mutex
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP client: %w", err)
	}

	var cache Cache
	sqliteCache, err := NewSnapshotCache(cfg.CachePath)
	if err != nil {
		log.Warn("failed to open snapshot cache, falling back to memory", "error", err)
		cache = NewMemoryCache()
	} else {
		cache = sqliteCache
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		cache:      cache,
	}

	if token, err := app.GetToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		app.authenticated = true
		log.Debug("token loaded from file")
	}

	return app, nil
}

// CheckConnection probes the server health endpoint.
func (a *App) CheckConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.httpClient.HealthCheck(ctx)
}

// IsAuthenticated reports whether a token is available.
func (a *App) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}

// GetToken returns the saved token.
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no token found, sign in first: entrykeeper auth login")
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return string(tokenBytes), nil
}

// SaveToken persists the token and arms the HTTP client with it.
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	a.httpClient.SetToken(token)

	a.mu.Lock()
	a.authenticated = true
	a.mu.Unlock()

	return nil
}

// ClearToken removes the saved token.
func (a *App) ClearToken() error {
	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()

	a.httpClient.SetToken("")

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}

	return nil
}

// Register creates a new account on the server.
func (a *App) Register(ctx context.Context, login, password string) error {
	if err := a.httpClient.Register(ctx, login, password); err != nil {
		return err
	}

	a.log.Info("user registered", "login", login)
	return nil
}

// Login authenticates against the server and saves the session token.
func (a *App) Login(ctx context.Context, login, password string) error {
	token, err := a.httpClient.Login(ctx, login, password)
	if err != nil {
		return err
	}

	if err := a.SaveToken(token); err != nil {
		return err
	}

	a.log.Info("signed in", "login", login)
	return nil
}

// SignOut revokes the session on the server and drops the local token.
// A failed server revoke keeps the token so the caller can retry.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.httpClient.Logout(ctx); err != nil {
		return err
	}

	if err := a.ClearToken(); err != nil {
		a.log.Warn("failed to clear token after sign-out", "error", err)
	}

	a.log.Info("signed out")
	return nil
}

// Logger exposes the application logger to the command layer.
func (a *App) Logger() *slog.Logger {
	return a.log
}

// Manager builds the admin-side entry manager backed by the server API.
func (a *App) Manager(confirm manager.Confirmer) *manager.Manager {
	return manager.New(a.httpClient, confirm, a.log)
}

// Viewer builds the guest-side read-only viewer backed by the server API
// with the local snapshot cache as offline fallback.
func (a *App) Viewer() *viewer.Viewer {
	return viewer.New(a.httpClient, a.cache, a.log)
}

func (a *App) Shutdown() {
	if err := a.cache.Close(); err != nil {
		a.log.Warn("failed to close snapshot cache", "error", err)
	}
}
