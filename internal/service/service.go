// Package service runs summary generations on a bounded worker pool with
// single-flight-per-caller semantics: a new generation for the same caller
// supersedes the previous in-flight one and suppresses its result.
package service

import (
	"context"
	"sync/atomic"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/summary"
	"github.com/maxbolgarin/logze/v2"
	"github.com/panjf2000/ants/v2"
)

// ErrSuperseded is returned when a newer generation for the same caller
// started before this one finished; the stale result is suppressed.
var ErrSuperseded = errm.New("superseded by a newer request")

// flight tracks one in-flight generation. The cancel function is owned
// exclusively by this flight and never shared across invocations.
type flight struct {
	id     uint64
	cancel context.CancelFunc
}

// Service executes summary workflows and narrative generation.
type Service struct {
	workflow *summary.Workflow
	agent    model.NarrativeAgent
	pool     *ants.Pool
	flights  *abstract.SafeMap[string, *flight]
	nextID   atomic.Uint64
	log      logze.Logger
}

// New creates a summary service. The agent may be nil: narrative generation
// is then disabled and reports carry statistics only.
func New(cfg Config, workflow *summary.Workflow, agent model.NarrativeAgent) (*Service, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}

	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		return nil, errm.Wrap(err, "failed to create ants pool")
	}

	return &Service{
		workflow: workflow,
		agent:    agent,
		pool:     pool,
		flights:  abstract.NewSafeMap[string, *flight](),
		log:      logze.With("component", "service"),
	}, nil
}

// Close releases the worker pool.
func (s *Service) Close(context.Context) error {
	s.pool.Release()
	return nil
}

// Validate runs request validation only, never touching the data provider.
func (s *Service) Validate(raw model.RawSummaryRequest) model.ValidationErrors {
	_, errs := s.workflow.ValidateOnly(raw)
	return errs
}

// GenerateSummary runs the full workflow for one caller. Starting a new
// generation for the same callerKey cancels the previous one; a generation
// that was superseded while running returns ErrSuperseded instead of its
// (stale) result.
func (s *Service) GenerateSummary(ctx context.Context, callerKey string, raw model.RawSummaryRequest) (model.SummaryReport, error) {
	id := s.nextID.Add(1)
	genCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	previous, hasPrevious := s.flights.Lookup(callerKey)
	s.flights.Set(callerKey, &flight{id: id, cancel: cancel})
	if hasPrevious {
		previous.cancel()
		s.log.Debug("superseding in-flight generation", "caller", callerKey)
	}

	generate := s.workflow.GenerateSummary(raw)

	type outcome struct {
		stats model.SummaryStats
		err   error
	}
	done := make(chan outcome, 1)
	if err := s.pool.Submit(func() {
		stats, err := generate(genCtx)
		done <- outcome{stats: stats, err: err}
	}); err != nil {
		s.clearFlight(callerKey, id)
		return model.SummaryReport{}, errm.Wrap(err, "failed to submit generation")
	}

	var out outcome
	select {
	case out = <-done:
	case <-genCtx.Done():
		s.clearFlight(callerKey, id)
		if ctx.Err() != nil {
			return model.SummaryReport{}, ctx.Err()
		}
		return model.SummaryReport{}, ErrSuperseded
	}

	// A newer generation may have started while this one was running.
	if current, ok := s.flights.Lookup(callerKey); !ok || current.id != id {
		return model.SummaryReport{}, ErrSuperseded
	}
	s.clearFlight(callerKey, id)

	if out.err != nil {
		return model.SummaryReport{}, out.err
	}

	report := model.SummaryReport{Stats: out.stats}
	report.Narrative = s.generateNarrative(genCtx, out.stats, raw)
	return report, nil
}

// generateNarrative is best-effort: a failing agent never destroys the
// computed statistics, the report just goes out without a narrative.
func (s *Service) generateNarrative(ctx context.Context, stats model.SummaryStats, raw model.RawSummaryRequest) string {
	if s.agent == nil {
		return ""
	}
	request, errs := s.workflow.ValidateOnly(raw)
	if errs != nil {
		return ""
	}

	narrative, err := s.agent.GenerateNarrative(ctx, stats, request)
	if err != nil {
		s.log.Error("failed to generate narrative", "error", err)
		return ""
	}
	return narrative
}

func (s *Service) clearFlight(callerKey string, id uint64) {
	if current, ok := s.flights.Lookup(callerKey); ok && current.id == id {
		s.flights.Delete(callerKey)
	}
}
