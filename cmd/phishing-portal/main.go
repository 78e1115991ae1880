package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"github.com/navneetjaguri/phishing-detection-portal/internal/di"
	"github.com/navneetjaguri/phishing-detection-portal/internal/ports"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	transport ports.Transport,
	authCache core.AuthCacheRepository,
) error {
	defer logger.Sync()

	// Start the transport
	if err := transport.Start(); err != nil {
		logger.Fatal("Failed to start transport", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Stop the transport
	if err := transport.Stop(); err != nil {
		logger.Error("Failed to stop transport", zap.Error(err))
	}

	// Stop the cache cleanup task if needed
	if stopper, ok := authCache.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	logger.Info("Shutdown complete")
	return nil
}
