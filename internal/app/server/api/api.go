// The server exposes the entry collection and the identity API:
//
//	POST /api/v1/auth/register   # Register (public)
//	POST /api/v1/auth/login      # Sign in, returns bearer token (public)
//	POST /api/v1/auth/logout     # Sign out, revokes the session
//	GET  /api/v1/entries         # List all entries (auth)
//	POST /api/v1/entries         # Create entry (auth)
//	PUT  /api/v1/entries/{id}    # Overwrite entry (auth)
//	DELETE /api/v1/entries/{id}  # Delete entry (auth)
//	GET  /api/v1/health          # Health check (public)
//
// Role selection is a client-side choice; the server authenticates but
// does not authorize per role.
package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "entrykeeper/internal/app/server/api/http/health"
	"entrykeeper/internal/app/server/api/http/middleware"
	authMW "entrykeeper/internal/app/server/api/http/middleware/auth"
	loggerMW "entrykeeper/internal/app/server/api/http/middleware/logger"
	"entrykeeper/internal/app/server/config"
	"entrykeeper/internal/domain/entry"
	"entrykeeper/internal/domain/session"
	"entrykeeper/internal/domain/user"
	"entrykeeper/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *user.Handler
	Entry  *entry.Handler
}

// New builds a *chi.Mux with all operations registered through huma.
func New(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Entrykeeper API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Entry.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour, log)
	authMiddleware := authMW.New(sessionService, log)
	loggerMiddleware := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMiddleware.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), log)
	middlewares.Add(loggerMiddleware.Middleware())
	userHandler := user.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	entryRepo := postgres.NewEntryRepository(storage, log)
	entryService := entry.NewService(entryRepo, log)
	middlewares.Add(authMiddleware.Middleware())
	middlewares.Add(loggerMiddleware.Middleware())
	entryHandler := entry.NewHandler(entryService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Entry:  entryHandler,
	}
}
