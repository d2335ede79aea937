package service

import (
	"context"
	"fmt"

	"github.com/KevinOBytes/example-app-template/internal/agent"
	"github.com/KevinOBytes/example-app-template/internal/domain"
)

// newAgent constructs a fresh sample agent from the configured defaults with
// any per-request overrides applied.
//
// Every operation below builds its own instance, so execution history never
// accumulates across requests. A shared or session-scoped agent would change
// the history endpoint's semantics and is deliberately not introduced here;
// see DESIGN.md.
func (s *Service) newAgent(overrides *domain.AgentConfigOverrides, opts ...agent.Option) (*agent.SampleAgent, error) {
	cfg := agent.Config{
		Name:           "sample-agent",
		Model:          s.cfg.AgentModel,
		Temperature:    s.cfg.AgentTemperature,
		MaxIterations:  s.cfg.AgentMaxIterations,
		TimeoutSeconds: s.cfg.AgentTimeoutSecs,
	}
	if overrides != nil {
		if overrides.Model != "" {
			cfg.Model = overrides.Model
		}
		if overrides.Temperature != nil {
			cfg.Temperature = *overrides.Temperature
		}
		if overrides.MaxIterations != nil {
			cfg.MaxIterations = *overrides.MaxIterations
		}
		if overrides.TimeoutSeconds != nil {
			cfg.TimeoutSeconds = *overrides.TimeoutSeconds
		}
	}

	allOpts := append([]agent.Option{agent.WithLogger(s.log)}, s.agentOpts...)
	allOpts = append(allOpts, opts...)

	a, err := agent.NewSampleAgent(cfg, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to construct agent: %w", err)
	}
	return a, nil
}

// ExecuteTask executes a task with an optional context mapping and optional
// per-request agent configuration.
func (s *Service) ExecuteTask(ctx context.Context, task string, taskContext map[string]any, overrides *domain.AgentConfigOverrides) (domain.ExecutionResult, error) {
	a, err := s.newAgent(overrides)
	if err != nil {
		return domain.ExecutionResult{}, err
	}
	return a.Execute(ctx, task, taskContext), nil
}

// AnalyzeData runs the analysis operation over the provided data.
func (s *Service) AnalyzeData(ctx context.Context, data string) (domain.ExecutionResult, error) {
	a, err := s.newAgent(nil)
	if err != nil {
		return domain.ExecutionResult{}, err
	}
	return a.Analyze(ctx, data), nil
}

// GenerateContent runs the generation operation for the provided prompt.
func (s *Service) GenerateContent(ctx context.Context, prompt string) (domain.ExecutionResult, error) {
	a, err := s.newAgent(nil)
	if err != nil {
		return domain.ExecutionResult{}, err
	}
	return a.Generate(ctx, prompt), nil
}

// ExecutionHistory returns the execution history of a freshly constructed
// agent. With per-request instances this is always empty.
func (s *Service) ExecutionHistory(ctx context.Context) ([]domain.ExecutionRecord, error) {
	a, err := s.newAgent(nil)
	if err != nil {
		return nil, err
	}
	return a.ExecutionHistory(), nil
}
