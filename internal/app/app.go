package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/legolocker/backend/internal/adapter/postgres"
	documentrepo "github.com/legolocker/backend/internal/adapter/postgres/document"
	tokenrepo "github.com/legolocker/backend/internal/adapter/postgres/token"
	userrepo "github.com/legolocker/backend/internal/adapter/postgres/user"
	"github.com/legolocker/backend/internal/auth"
	"github.com/legolocker/backend/internal/config"
	authsvc "github.com/legolocker/backend/internal/service/auth"
	documentsvc "github.com/legolocker/backend/internal/service/document"
	"github.com/legolocker/backend/internal/transport/middleware"
	"github.com/legolocker/backend/internal/transport/rest"
)

// Run boots the sync backend: configuration, logging, migrations, the pgx
// pool, services and the HTTP server. It blocks until ctx is canceled, then
// shuts the server down within the configured grace period.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// --- Services ---

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(
		logger,
		userrepo.New(pool),
		tokenrepo.New(pool),
		postgres.NewTxManager(pool),
		jwtManager,
		cfg.Auth,
	)
	documentService := documentsvc.NewService(logger, documentrepo.New(pool))

	// --- HTTP server ---

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimiter: rateLimiter,
		RatePerMin:  cfg.Server.RateLimitPerMin,
		Tokens:      authService,
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Auth:        rest.NewAuthHandler(authService, logger),
		Documents:   rest.NewDocumentHandler(documentService, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
