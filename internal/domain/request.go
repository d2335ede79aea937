package domain

// AgentConfigOverrides carries per-request overrides for the agent defaults.
// Nil fields fall back to the configured defaults.
type AgentConfigOverrides struct {
	Model          string   `json:"model,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
	MaxIterations  *int     `json:"max_iterations,omitempty"`
	TimeoutSeconds *int     `json:"timeout,omitempty"`
}

// ExecuteRequest is the request to execute an agent task.
type ExecuteRequest struct {
	Task        string                `json:"task"`
	Context     map[string]any        `json:"context,omitempty"`
	AgentConfig *AgentConfigOverrides `json:"agent_config,omitempty"`
}

// ExecuteResponse is the response from executing an agent task.
type ExecuteResponse struct {
	Status string          `json:"status"`
	Result ExecutionResult `json:"result"`
}

// AnalyzeRequest is the request to analyze data.
type AnalyzeRequest struct {
	Data string `json:"data"`
}

// GenerateRequest is the request to generate content.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// HistoryResponse is the response for the execution history endpoint.
type HistoryResponse struct {
	Status  string            `json:"status"`
	Count   int               `json:"count"`
	History []ExecutionRecord `json:"history"`
}
