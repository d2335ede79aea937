package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KevinOBytes/example-app-template/internal/domain"
)

// ExecuteTask executes an agent task.
// POST /api/v1/agent/execute
func (h *Handler) ExecuteTask(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ExecuteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Task == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "task is required"})
	}

	result, err := h.service.ExecuteTask(ctx, req.Task, req.Context, req.AgentConfig)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, domain.ExecuteResponse{
		Status: "success",
		Result: result,
	})
}

// GetHistory returns the agent execution history.
// GET /api/v1/agent/history
//
// The agent is constructed per request, so the history returned here is
// always empty. Preserved on purpose; see DESIGN.md.
func (h *Handler) GetHistory(c echo.Context) error {
	ctx := c.Request().Context()

	history, err := h.service.ExecutionHistory(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if history == nil {
		history = []domain.ExecutionRecord{}
	}

	return c.JSON(http.StatusOK, domain.HistoryResponse{
		Status:  "success",
		Count:   len(history),
		History: history,
	})
}

// AnalyzeData analyzes data using the agent.
// POST /api/v1/agent/analyze
func (h *Handler) AnalyzeData(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Data == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "data is required"})
	}

	result, err := h.service.AnalyzeData(ctx, req.Data)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, domain.ExecuteResponse{
		Status: "success",
		Result: result,
	})
}

// GenerateContent generates content using the agent.
// POST /api/v1/agent/generate
func (h *Handler) GenerateContent(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Prompt == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "prompt is required"})
	}

	result, err := h.service.GenerateContent(ctx, req.Prompt)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, domain.ExecuteResponse{
		Status: "success",
		Result: result,
	})
}
