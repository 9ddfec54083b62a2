// Package config assembles per-component configuration into the single
// document loaded from the YAML file and the environment.
package config

import (
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/agent"
	"github.com/maxbolgarin/gitpulse/internal/provider"
	"github.com/maxbolgarin/gitpulse/internal/server"
	"github.com/maxbolgarin/gitpulse/internal/service"
	"github.com/maxbolgarin/gitpulse/internal/summary"
)

// Config represents the main application configuration.
type Config struct {
	Server   server.Config   `yaml:"server"`
	Provider provider.Config `yaml:"provider"`
	Agent    agent.Config    `yaml:"agent"`
	Summary  summary.Config  `yaml:"summary"`
	Service  service.Config  `yaml:"service"`
}

// Validate checks the cross-component requirements early, so a misconfigured
// deployment fails at startup instead of on the first request. Component
// configs run their own PrepareAndValidate when the component is built.
func (c *Config) Validate() error {
	if c.Provider.Token == "" {
		return errm.New("provider token is required")
	}
	if c.Provider.Type == "" {
		return errm.New("provider type is required")
	}
	return nil
}
