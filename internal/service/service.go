// Package service wires the agent contract to the transport layer.
package service

import (
	"github.com/sirupsen/logrus"

	"github.com/KevinOBytes/example-app-template/internal/agent"
	"github.com/KevinOBytes/example-app-template/internal/config"
)

// Service mediates between HTTP handlers and agent instances.
type Service struct {
	cfg       *config.Config
	log       *logrus.Logger
	agentOpts []agent.Option
}

// New creates a new service. Extra agent options are applied to every agent
// the service constructs (tests use this to shrink the processing delay).
func New(cfg *config.Config, log *logrus.Logger, agentOpts ...agent.Option) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		cfg:       cfg,
		log:       log,
		agentOpts: agentOpts,
	}
}

// Config returns the service configuration.
func (s *Service) Config() *config.Config {
	return s.cfg
}
