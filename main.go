// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artliving/cmd"
	"artliving/internal/data/repository"
	"artliving/internal/wire"
	"artliving/pkg/restapi"
	"artliving/pkg/storage"
	"artliving/pkg/utils"

	"go.uber.org/zap"
)

const sweepInterval = time.Minute

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("api", config.API.BaseURL),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, config, logger)
	stop()

	if err != nil {
		logger.Error("Application stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// run serves until ctx ends. Every resource it opens is released before it
// returns.
func run(ctx context.Context, config *utils.Config, logger *zap.Logger) error {
	// Open tab storage
	store, err := storage.Open(ctx, config, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	// REST backend client
	client, err := restapi.NewClient(config.API)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	// Initialize all repositories
	repos := repository.NewRepository(client, store, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)
	defer app.Tabs.CloseAll()

	go app.Tabs.Run(ctx, sweepInterval)

	// Start server
	return cmd.APIServer(ctx, app.Router, config.App.Port, logger)
}
