// Package main runs an interactive terminal chat over the in-memory store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/easeaico/oriona/internal/agent"
	"github.com/easeaico/oriona/internal/config"
	"github.com/easeaico/oriona/internal/storage"
	"github.com/easeaico/oriona/internal/types"
)

func main() {
	userID := flag.String("user", "terminal", "user id to learn about")
	mode := flag.String("mode", string(types.ModeAuto), "auto | investigacion | conversacion")
	offline := flag.Bool("offline", false, "disable web search")
	flag.Parse()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mem := storage.NewMemoryStore()
	repos := agent.Repos{Profiles: mem, Engagements: mem, Knowledge: mem}

	var (
		companion *agent.Companion
		err       error
	)
	if *offline {
		companion, err = agent.New(agent.Options{
			Profiles:    repos.Profiles,
			Engagements: repos.Engagements,
			Knowledge:   repos.Knowledge,
		})
	} else {
		companion, err = agent.NewFromConfig(&cfg, repos)
	}
	if err != nil {
		log.Fatalf("failed to initialize companion: %v", err)
	}

	s := newSession(companion, *userID, types.ParseMode(*mode), os.Stdout)
	if err := s.run(ctx, os.Stdin); err != nil && err != context.Canceled {
		log.Fatalf("chat failed: %v", err)
	}
	fmt.Println("\n¡Hasta pronto! 👋")
}
