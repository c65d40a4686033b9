package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amaumene/gomoviez/internal/api"
	"github.com/amaumene/gomoviez/internal/config"
	"github.com/amaumene/gomoviez/internal/files"
	"github.com/amaumene/gomoviez/internal/repository"
	"github.com/amaumene/gomoviez/internal/storage"
	"github.com/amaumene/gomoviez/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting Gomoviez")
	logger.WithField("database", cfg.DatabaseType).Info("Configuration loaded")

	// 3. Open storage backend
	backend, err := storage.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage backend: %w", err)
	}
	defer backend.Close()
	logger.Info("Storage backend initialized")

	// 4. Initialize repository, seeding sample data when the store is empty
	repo := repository.NewService(backend, logger)
	movies := repo.LoadMovies()
	logger.WithField("count", len(movies)).Info("Movie catalog loaded")

	// 5. Initialize upload store
	store, err := files.NewStore(cfg.UploadDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize upload store: %w", err)
	}
	logger.Info("Upload store initialized")

	// 6. Initialize HTTP server
	server := api.NewServer(cfg, repo, store, logger)

	// Start server in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 7. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Gomoviez is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("Gomoviez stopped")
	return nil
}
