package model

import (
	"context"

	"github.com/maxbolgarin/gitpulse/internal/effect"
)

// DataProvider wraps a hosting-platform API client. It returns Effects, not
// raw results, so the workflow layer stays free of direct I/O calls: the
// returned Effect must not fail synchronously, all failures surface when it
// is invoked. Implementations may fan out internally per auth-context group
// but return a single merged list.
type DataProvider interface {
	FetchCommits(repositories []string, dateRange DateRange, branch string) effect.Effect[[]Commit]
}

// FetchResult carries fetched commits together with partial-failure
// visibility: Partial marks that one or more auth-context groups failed and
// contributed nothing.
type FetchResult struct {
	Commits      []Commit
	Partial      bool
	FailedGroups []string
}

// DetailedDataProvider is an optional upgrade of DataProvider exposing
// partial-failure information instead of absorbing it silently.
type DetailedDataProvider interface {
	FetchCommitsDetailed(repositories []string, dateRange DateRange, branch string) effect.Effect[FetchResult]
}

// NarrativeAgent turns computed statistics into a human-readable summary.
type NarrativeAgent interface {
	GenerateNarrative(ctx context.Context, stats SummaryStats, request SummaryRequest) (string, error)
}
