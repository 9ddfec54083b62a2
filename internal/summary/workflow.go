package summary

import (
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/effect"
	"github.com/maxbolgarin/gitpulse/internal/model"
)

// Workflow composes validation, data fetch, filtering and aggregation into
// a single Effect representing the whole summary use case. The workflow
// itself holds no mutable state and performs no retries: retry policy, if
// any, belongs to the data provider.
type Workflow struct {
	provider model.DataProvider
	cfg      Config
}

// NewWorkflow creates a summary workflow over the given data provider.
func NewWorkflow(provider model.DataProvider, cfg Config) (*Workflow, error) {
	if provider == nil {
		return nil, errm.New("data provider is required")
	}
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}
	return &Workflow{provider: provider, cfg: cfg}, nil
}

// GenerateSummary describes the full use case as one unexecuted Effect:
// validate, fetch, filter by requested users, aggregate, and re-map errors
// to user-facing messages once at the outermost layer. An invalid request
// fails before the provider is ever touched.
func (w *Workflow) GenerateSummary(raw model.RawSummaryRequest) effect.Effect[model.SummaryStats] {
	return effect.Recover(w.pipeline(raw), MapUserFacingError)
}

// ValidateOnly runs request validation without building the fetch pipeline,
// for pre-flight checks that must not trigger any I/O.
func (w *Workflow) ValidateOnly(raw model.RawSummaryRequest) (model.SummaryRequest, model.ValidationErrors) {
	validated := ValidateRequest(raw, w.cfg)
	request, ok := validated.Value()
	if !ok {
		return model.SummaryRequest{}, validated.Err().(model.ValidationErrors)
	}
	return request, nil
}

func (w *Workflow) pipeline(raw model.RawSummaryRequest) effect.Effect[model.SummaryStats] {
	validated := ValidateRequest(raw, w.cfg)
	request, ok := validated.Value()
	if !ok {
		return effect.Fail[model.SummaryStats](validated.Err())
	}

	fetched := w.fetch(request)

	filtered := effect.Map(fetched, func(res model.FetchResult) model.FetchResult {
		res.Commits = ApplyCommitFilters(res.Commits, CommitFilters{Users: request.Users})
		return res
	})

	return effect.Map(filtered, func(res model.FetchResult) model.SummaryStats {
		stats := CalculateSummaryStats(res.Commits, w.cfg)
		stats.Partial = res.Partial
		return stats
	})
}

// fetch prefers the detailed provider form so partial fetches stay
// observable; plain providers are wrapped into a never-partial result.
func (w *Workflow) fetch(request model.SummaryRequest) effect.Effect[model.FetchResult] {
	if detailed, ok := w.provider.(model.DetailedDataProvider); ok {
		return detailed.FetchCommitsDetailed(request.Repositories, request.DateRange, request.Branch)
	}
	plain := w.provider.FetchCommits(request.Repositories, request.DateRange, request.Branch)
	return effect.Map(plain, func(commits []model.Commit) model.FetchResult {
		return model.FetchResult{Commits: commits}
	})
}
