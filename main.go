package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KevinOBytes/example-app-template/internal/config"
	"github.com/KevinOBytes/example-app-template/internal/service"
	transport "github.com/KevinOBytes/example-app-template/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	log := newLogger(cfg)

	log.Info("Starting AI Agent Application...")
	log.Infof("Environment: %s", cfg.AppEnv)
	log.Infof("Debug mode: %t", cfg.AppDebug)
	log.Infof("Agent model: %s", cfg.AgentModel)

	// Initialize service
	svc := service.New(cfg, log)

	// Create HTTP server
	server := transport.NewServer(cfg, svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.AppPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Infof("API started on port %d", cfg.AppPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down AI Agent Application...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shutdown server gracefully: %v", err)
	}

	log.Info("AI Agent Application stopped")
}

// newLogger builds the process logger from the configured level and format.
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.LogFormat, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
