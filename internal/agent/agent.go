// Package agent generates the AI narrative for computed summary statistics.
package agent

import (
	"context"
	"strings"

	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/agent/gemini"
	"github.com/maxbolgarin/gitpulse/internal/agent/openai"
	"github.com/maxbolgarin/gitpulse/internal/agent/prompts"
	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/logze/v2"
)

var _ model.NarrativeAgent = (*Agent)(nil)

// Agent wraps an LLM backend behind the NarrativeAgent boundary.
type Agent struct {
	cfg    Config
	logger logze.Logger
	pb     *prompts.Builder
	api    model.AgentAPI
}

// New creates a narrative agent for the configured backend.
func New(ctx context.Context, cfg Config) (*Agent, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}
	cli, err := cliex.NewWithConfig(cliex.Config{
		BaseURL:        cfg.BaseURL,
		UserAgent:      cfg.UserAgent,
		ProxyAddress:   cfg.ProxyURL,
		RequestTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, errm.Wrap(err, "failed to create HTTP client")
	}

	agent := &Agent{
		cfg:    cfg,
		logger: logze.With("component", "agent"),
		pb:     prompts.NewBuilder(cfg.Language),
	}

	modelCfg := model.ModelConfig{
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		URL:      cfg.BaseURL,
		ProxyURL: cfg.ProxyURL,
		IsTest:   cfg.IsTest,
	}

	switch cfg.Type {
	case Gemini:
		agent.api, err = gemini.New(ctx, modelCfg)
	case OpenAI:
		agent.api, err = openai.New(ctx, cli, modelCfg)
	default:
		return nil, errm.New("unsupported agent type: " + string(cfg.Type))
	}
	if err != nil {
		return nil, errm.Wrap(err, "failed to create agent")
	}

	return agent, nil
}

// GenerateNarrative turns computed statistics into a short narrative
// paragraph for the dashboard.
func (a *Agent) GenerateNarrative(ctx context.Context, stats model.SummaryStats, request model.SummaryRequest) (string, error) {
	prompt := a.pb.BuildNarrativePrompt(stats, request)

	response, err := a.api.CallAPI(ctx, model.APIRequest{
		Prompt:       prompt.UserPrompt,
		SystemPrompt: prompt.SystemPrompt,
		MaxTokens:    a.cfg.MaxTokens,
		Temperature:  a.cfg.Temperature,
		ResponseType: "text/plain",
	})
	if err != nil {
		return "", errm.Wrap(err, "failed to call API")
	}

	narrative := strings.TrimSpace(response.Content)
	if narrative == "" {
		return "", errm.New("empty response from API")
	}

	a.logger.Debug("generated narrative",
		"total_tokens", response.TotalTokens,
		"length", len(narrative))

	return narrative, nil
}
