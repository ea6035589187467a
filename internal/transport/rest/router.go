package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/legolocker/backend/internal/config"
	"github.com/legolocker/backend/internal/transport/middleware"
)

// TokenValidator checks access tokens for the document endpoints.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps bundles everything NewRouter needs.
type RouterDeps struct {
	Logger *slog.Logger
	CORS   config.CORSConfig

	RateLimiter *middleware.RateLimiter
	RatePerMin  int

	Tokens TokenValidator

	Health    *HealthHandler
	Auth      *AuthHandler
	Documents *DocumentHandler
}

// NewRouter builds the HTTP routing table. The document endpoints sit behind
// the optional-auth middleware so both anonymous and signed-in clients can
// use them; the auth endpoints stay outside it.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)
	if deps.RateLimiter != nil && deps.RatePerMin > 0 {
		r.Use(deps.RateLimiter.Limit(deps.RatePerMin))
	}

	r.Get("/health", deps.Health.Health)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/live", deps.Health.Live)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
		r.Post("/refresh", deps.Auth.Refresh)
		r.Post("/logout", deps.Auth.Logout)
	})

	r.Route("/api/{collection}", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Tokens))
		r.Get("/", deps.Documents.List)
		r.Post("/", deps.Documents.Create)
		r.Get("/{id}", deps.Documents.Get)
		r.Put("/{id}", deps.Documents.Upsert)
		r.Delete("/{id}", deps.Documents.Delete)
	})

	return r
}
