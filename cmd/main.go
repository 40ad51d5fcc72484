package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stop-sign-detector/config"
	"stop-sign-detector/internal/api/console"
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
	log.Printf("Detector backend: %s, images: %s, results: %s", cfg.Backend, cfg.ImageDir, cfg.ResultsDir)

	menu := console.New(os.Stdin, os.Stdout, appContainer.DetectionService, appContainer.Sources, console.Options{
		ImageDir:   cfg.ImageDir,
		ResultsDir: cfg.ResultsDir,
		DemoDir:    ".",
	})
	if err := menu.Run(ctx); err != nil {
		log.Fatalf("Console error: %v", err)
	}
}
