package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/api"
	"github.com/Project-Sylos/Desktop98/internal/config"
	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "Configuration file path (default: built-in config)")
	pflag.Parse()

	// A positional argument is still accepted as the config path
	if *configPath == "" && pflag.NArg() > 0 {
		*configPath = pflag.Arg(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Sync()
	logger := logging.L()

	desktop, err := sdk.NewWithConfig(cfg)
	if err != nil {
		logger.Fatal("failed to initialize desktop", zap.Error(err))
	}
	logger.Info("desktop initialized",
		zap.String("db_path", cfg.Storage.DBPath),
		zap.String("theme", cfg.Desktop.Theme),
	)

	server := api.NewServer(desktop, &cfg.API)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		// I am here to serve.
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", zap.Error(err))
		}
		if err := desktop.Close(); err != nil {
			logger.Error("failed to close desktop", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
		return
	}
	logger.Info("server shutdown complete")
}

// loadConfig reads configPath, or the defaults when it is empty, then applies the environment
func loadConfig(configPath string) (*types.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := config.ApplyEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply environment: %w", err)
		}
		return cfg, nil
	}

	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	return &cfg, nil
}
