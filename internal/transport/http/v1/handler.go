// Package v1 provides the HTTP handlers for the agent API.
package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KevinOBytes/example-app-template/internal/service"
)

// Version is the reported application version.
const Version = "1.0.0"

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Agent API
	api := e.Group("/api/v1")
	api.POST("/agent/execute", h.ExecuteTask)
	api.GET("/agent/history", h.GetHistory)
	api.POST("/agent/analyze", h.AnalyzeData)
	api.POST("/agent/generate", h.GenerateContent)

	// Liveness and metadata
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.GET("/info", h.Info)
}

// Root returns a running banner.
// GET /
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "AI Agent Application is running",
		"version":   Version,
		"timestamp": time.Now().UTC(),
	})
}

// Health returns health status.
// GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.service.Config().AppEnv,
	})
}

// Info returns application and agent configuration metadata.
// GET /info
func (h *Handler) Info(c echo.Context) error {
	cfg := h.service.Config()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"app_name":    cfg.AppName,
		"environment": cfg.AppEnv,
		"debug":       cfg.AppDebug,
		"agent_config": map[string]interface{}{
			"model":          cfg.AgentModel,
			"temperature":    cfg.AgentTemperature,
			"max_iterations": cfg.AgentMaxIterations,
			"timeout":        cfg.AgentTimeoutSecs,
		},
	})
}
