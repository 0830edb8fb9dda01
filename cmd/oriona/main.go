// Package main boots the Oriona HTTP service and wires application dependencies.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/easeaico/oriona/internal/agent"
	"github.com/easeaico/oriona/internal/config"
	"github.com/easeaico/oriona/internal/handler"
	"github.com/easeaico/oriona/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	slog.Info("configuration loaded",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"search_providers", cfg.SearchProviders,
		"persistent", cfg.DatabaseURL != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore := openRepos(ctx, &cfg)
	defer closeStore()

	companion, err := agent.NewFromConfig(&cfg, repos)
	if err != nil {
		log.Fatalf("failed to initialize companion: %v", err)
	}
	if err := companion.Restore(ctx); err != nil {
		slog.Warn("failed to restore learned knowledge", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler.NewRouter(companion),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed: %v", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("graceful shutdown failed", "error", err)
	}
}

// openRepos connects to postgres when DATABASE_URL is set and falls back to
// process memory otherwise.
func openRepos(ctx context.Context, cfg *config.Config) (agent.Repos, func()) {
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, profiles will not survive a restart")
		mem := storage.NewMemoryStore()
		return agent.Repos{Profiles: mem, Engagements: mem, Knowledge: mem}, func() {}
	}

	store, err := storage.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return agent.Repos{
		Profiles:    store.Profiles,
		Engagements: store.Engagements,
		Knowledge:   store.Knowledge,
	}, store.Close
}
