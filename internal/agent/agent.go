// Package agent defines the agent execution contract and its sample implementation.
package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/KevinOBytes/example-app-template/internal/domain"
)

// Agent is a named unit that executes task strings and logs each
// execution to a per-instance, in-memory history.
type Agent interface {
	// Execute runs a task. Processing failures are captured and returned
	// as a status="error" result rather than as an error value; exactly
	// one history record is appended either way.
	Execute(ctx context.Context, task string, taskContext map[string]any) domain.ExecutionResult

	// ExecutionHistory returns a copy of the history in call order.
	ExecutionHistory() []domain.ExecutionRecord

	// ClearHistory empties the history unconditionally.
	ClearHistory()
}

// Config holds the construction-time parameters for an agent.
// MaxIterations and TimeoutSeconds are validated here but never enforced
// during execution.
type Config struct {
	Name           string
	Model          string
	Temperature    float64
	MaxIterations  int
	TimeoutSeconds int
}

// Bounds for construction-time validation.
const (
	minTemperature = 0.0
	maxTemperature = 2.0
	minIterations  = 1
	maxIterations  = 100
	minTimeoutSecs = 1
	maxTimeoutSecs = 3600
)

// validate rejects out-of-range construction parameters.
func (c Config) validate() error {
	if c.Temperature < minTemperature || c.Temperature > maxTemperature {
		return fmt.Errorf("temperature %.2f out of range [%.1f, %.1f]", c.Temperature, minTemperature, maxTemperature)
	}
	if c.MaxIterations < minIterations || c.MaxIterations > maxIterations {
		return fmt.Errorf("max_iterations %d out of range [%d, %d]", c.MaxIterations, minIterations, maxIterations)
	}
	if c.TimeoutSeconds < minTimeoutSecs || c.TimeoutSeconds > maxTimeoutSecs {
		return fmt.Errorf("timeout %d out of range [%d, %d]", c.TimeoutSeconds, minTimeoutSecs, maxTimeoutSecs)
	}
	return nil
}

// defaultProcessingDelay is the fixed artificial delay that stands in for
// real model processing.
const defaultProcessingDelay = 500 * time.Millisecond

// Option configures optional SampleAgent behavior.
type Option func(*SampleAgent)

// WithProcessingDelay overrides the artificial processing delay.
func WithProcessingDelay(d time.Duration) Option {
	return func(a *SampleAgent) {
		a.processingDelay = d
	}
}

// WithLogger sets the logger used for execution logging.
func WithLogger(log *logrus.Logger) Option {
	return func(a *SampleAgent) {
		a.log = log
	}
}

// SampleAgent is a placeholder agent that sleeps and echoes its input.
// It demonstrates the contract a real model-backed agent would implement.
type SampleAgent struct {
	name           string
	model          string
	temperature    float64
	maxIterations  int
	timeoutSeconds int

	processingDelay time.Duration
	log             *logrus.Logger

	mu      sync.Mutex
	history []domain.ExecutionRecord
}

var _ Agent = (*SampleAgent)(nil)

// NewSampleAgent creates a sample agent. The history starts empty and
// lives as long as the instance.
func NewSampleAgent(cfg Config, opts ...Option) (*SampleAgent, error) {
	if cfg.Name == "" {
		cfg.Name = "sample-agent"
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid agent config: %w", err)
	}

	a := &SampleAgent{
		name:            cfg.Name,
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxIterations:   cfg.MaxIterations,
		timeoutSeconds:  cfg.TimeoutSeconds,
		processingDelay: defaultProcessingDelay,
		log:             logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	a.log.WithFields(logrus.Fields{
		"agent": a.name,
		"model": a.model,
	}).Info("initialized agent")

	return a, nil
}

// Name returns the agent identifier.
func (a *SampleAgent) Name() string { return a.name }

// Model returns the configured model identifier.
func (a *SampleAgent) Model() string { return a.model }

// Execute runs a task through the sample processing path.
func (a *SampleAgent) Execute(ctx context.Context, task string, taskContext map[string]any) domain.ExecutionResult {
	start := time.Now().UTC()
	a.log.WithField("task", task).Info("executing task")

	result, err := a.process(ctx, task, taskContext)
	if err != nil {
		a.log.WithField("task", task).WithError(err).Error("error executing task")
		result = domain.ExecutionResult{
			Status:    domain.ExecutionStatusError,
			Task:      task,
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		}
	}

	a.logExecution(task, result, time.Since(start))
	return result
}

// process performs the artificial delay and builds the success result.
// This is where a real agent would call its model.
func (a *SampleAgent) process(ctx context.Context, task string, taskContext map[string]any) (domain.ExecutionResult, error) {
	timer := time.NewTimer(a.processingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return domain.ExecutionResult{}, ctx.Err()
	}

	result := domain.ExecutionResult{
		Status:          domain.ExecutionStatusSuccess,
		Task:            task,
		Response:        fmt.Sprintf("Processed task: %s", task),
		Agent:           a.name,
		Model:           a.model,
		ContextProvided: taskContext != nil,
		Timestamp:       time.Now().UTC(),
	}
	if taskContext != nil {
		result.ContextKeys = sortedKeys(taskContext)
	}
	return result, nil
}

// Analyze runs an analysis task over the provided data.
func (a *SampleAgent) Analyze(ctx context.Context, data string) domain.ExecutionResult {
	return a.Execute(ctx, fmt.Sprintf("Analyze: %s", data), map[string]any{"operation": "analyze"})
}

// Generate runs a generation task for the provided prompt.
func (a *SampleAgent) Generate(ctx context.Context, prompt string) domain.ExecutionResult {
	return a.Execute(ctx, fmt.Sprintf("Generate: %s", prompt), map[string]any{"operation": "generate"})
}

// logExecution appends one record to the history. Records are append-only;
// only ClearHistory removes them.
func (a *SampleAgent) logExecution(task string, result domain.ExecutionResult, duration time.Duration) {
	record := domain.ExecutionRecord{
		RecordID:        uuid.NewString(),
		Timestamp:       time.Now().UTC(),
		AgentName:       a.name,
		Task:            task,
		Result:          result,
		DurationSeconds: duration.Seconds(),
		Model:           a.model,
	}

	a.mu.Lock()
	a.history = append(a.history, record)
	a.mu.Unlock()

	a.log.WithFields(logrus.Fields{
		"agent":    a.name,
		"duration": fmt.Sprintf("%.2fs", duration.Seconds()),
	}).Info("executed task")
}

// ExecutionHistory returns a copy so callers cannot bypass the
// append-only discipline.
func (a *SampleAgent) ExecutionHistory() []domain.ExecutionRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.ExecutionRecord, len(a.history))
	copy(out, a.history)
	return out
}

// ClearHistory empties the history.
func (a *SampleAgent) ClearHistory() {
	a.mu.Lock()
	a.history = nil
	a.mu.Unlock()
	a.log.WithField("agent", a.name).Info("cleared execution history")
}

// sortedKeys returns the map keys in lexicographic order. Go maps have no
// insertion order, so sorting keeps context_keys deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
