package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/account-service/internal/config"
	"github.com/msomdec/account-service/internal/domain"
	"github.com/msomdec/account-service/internal/handler"
	"github.com/msomdec/account-service/internal/repository/postgres"
	"github.com/msomdec/account-service/internal/repository/sqlite"
	"github.com/msomdec/account-service/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	if cfg.IsDevelopment() && len(cfg.JWTSecret) < 32 {
		slog.Warn("JWT_SECRET is shorter than 32 bytes; acceptable only in development")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied", "driver", cfg.DBDriver)

	hasher, err := service.NewHasher(cfg.HashAlgorithm, cfg.BcryptCost)
	if err != nil {
		return err
	}
	tokens := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL())

	authService := service.NewAuthService(db.Users(), hasher, tokens)
	userService := service.NewUserService(db.Users(), hasher)

	loginLimiter := service.NewTokenBucket(cfg.LoginRateLimit, cfg.LoginRateBurst)
	defer loginLimiter.Close()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Deps{
		Auth:         authService,
		Users:        userService,
		LoginLimiter: loginLimiter,
		Development:  cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.Wrap(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Env, "token_ttl", cfg.TokenTTL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (domain.Database, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	default:
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, nil
	}
}
