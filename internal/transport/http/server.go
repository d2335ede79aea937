// Package http provides the HTTP server implementation for the agent service.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/KevinOBytes/example-app-template/internal/config"
	"github.com/KevinOBytes/example-app-template/internal/service"
	v1 "github.com/KevinOBytes/example-app-template/internal/transport/http/v1"
)

// NewServer creates and configures the HTTP server.
// It serves the agent API under /api/v1 plus the root metadata endpoints.
func NewServer(cfg *config.Config, svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Handlers
	handler := v1.NewHandler(svc)

	// Register Routes
	handler.RegisterRoutes(e)

	return e
}
