package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"splitledger/internal/config"
	"splitledger/internal/database"
	"splitledger/internal/logger"
	"splitledger/internal/router"
)

// @title           Splitledger API
// @version         1.0
// @description     Shared-expense ledger: people, expenses and the participant shares that split them.

// @host      localhost:8000
// @BasePath  /

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router.New(dbManager.DB(), appConfig),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting splitledger server on port %s (%s database)", appConfig.Port, appConfig.Database.Driver)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-sigChan:
		log.Infof("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
