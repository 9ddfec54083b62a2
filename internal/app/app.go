// Package app wires the application together: provider, summary workflow,
// narrative agent, service and the HTTP API server.
package app

import (
	"context"

	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/agent"
	"github.com/maxbolgarin/gitpulse/internal/config"
	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/provider"
	"github.com/maxbolgarin/gitpulse/internal/server"
	"github.com/maxbolgarin/gitpulse/internal/service"
	"github.com/maxbolgarin/gitpulse/internal/summary"
	"github.com/maxbolgarin/logze/v2"
)

// GitPulse is the main service that orchestrates all components.
type GitPulse struct {
	provider model.DataProvider
	agent    model.NarrativeAgent
	workflow *summary.Workflow
	service  *service.Service
	server   *server.Server

	cfg config.Config
	log logze.Logger
}

// New creates a new commit summary service.
func New(ctx contem.Context, cfg config.Config) (*GitPulse, error) {
	app := &GitPulse{
		cfg: cfg,
		log: logze.With("component", "app"),
	}

	if err := app.init(ctx, cfg); err != nil {
		return nil, errm.Wrap(err, "failed to initialize service")
	}

	return app, nil
}

// StartServer starts the HTTP API server.
func (s *GitPulse) StartServer(ctx context.Context) error {
	if err := s.server.Start(ctx); err != nil {
		return errm.Wrap(err, "failed to start API server")
	}
	return nil
}

// GenerateSummary runs the summary workflow once, outside the HTTP surface.
// Used by the one-shot CLI mode.
func (s *GitPulse) GenerateSummary(ctx context.Context, raw model.RawSummaryRequest) (model.SummaryReport, error) {
	return s.service.GenerateSummary(ctx, "cli", raw)
}

func (s *GitPulse) init(ctx contem.Context, cfg config.Config) (err error) {

	// Create hosting-platform provider
	s.provider, err = provider.New(cfg.Provider)
	if err != nil {
		return errm.Wrap(err, "failed to create data provider")
	}

	// Narrative generation is optional: without an API key the reports
	// carry statistics only.
	if cfg.Agent.APIKey != "" {
		s.agent, err = agent.New(ctx, cfg.Agent)
		if err != nil {
			return errm.Wrap(err, "failed to create narrative agent")
		}
	}

	s.workflow, err = summary.NewWorkflow(s.provider, cfg.Summary)
	if err != nil {
		return errm.Wrap(err, "failed to create summary workflow")
	}

	s.service, err = service.New(cfg.Service, s.workflow, s.agent)
	if err != nil {
		return errm.Wrap(err, "failed to create summary service")
	}
	ctx.Add(s.service.Close)

	resolver, _ := s.provider.(server.UserResolver)

	s.server, err = server.New(cfg.Server, s.service, resolver)
	if err != nil {
		return errm.Wrap(err, "failed to create API server")
	}
	ctx.Add(s.server.Stop)

	return nil
}
