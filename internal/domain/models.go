// Package domain defines the core domain models for the agent service.
package domain

import "time"

// ExecutionStatus represents the outcome of an agent execution.
type ExecutionStatus string

const (
	ExecutionStatusSuccess ExecutionStatus = "success"
	ExecutionStatusError   ExecutionStatus = "error"
)

// ExecutionResult is the structured result of a single agent execution.
// On the error path only Status, Task, Error and Timestamp are populated.
type ExecutionResult struct {
	Status          ExecutionStatus `json:"status"`
	Task            string          `json:"task"`
	Response        string          `json:"response,omitempty"`
	Agent           string          `json:"agent,omitempty"`
	Model           string          `json:"model,omitempty"`
	ContextProvided bool            `json:"context_provided"`
	ContextKeys     []string        `json:"context_keys,omitempty"`
	Error           string          `json:"error,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ExecutionRecord is an immutable log entry capturing one execution.
type ExecutionRecord struct {
	RecordID        string          `json:"record_id"`
	Timestamp       time.Time       `json:"timestamp"`
	AgentName       string          `json:"agent_name"`
	Task            string          `json:"task"`
	Result          ExecutionResult `json:"result"`
	DurationSeconds float64         `json:"duration_seconds"`
	Model           string          `json:"model"`
}
