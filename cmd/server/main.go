package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stop-sign-detector/config"
	httpapi "stop-sign-detector/internal/api/http"
	"stop-sign-detector/internal/container"
	"stop-sign-detector/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appContainer, err := container.New(cfg, storage.NewMemoryUserRepository())
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		log.Fatalf("Failed to create results dir: %v", err)
	}

	server := httpapi.NewServer(appContainer.DetectionService, cfg.ResultsDir)
	if err := server.Run(ctx, cfg.HTTPAddr); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
