package summary_test

import (
	"testing"
	"time"

	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCommitFiltersNoFiltersPassesEverything(t *testing.T) {
	commits := sampleCommits()
	got := summary.ApplyCommitFilters(commits, summary.CommitFilters{})
	assert.Equal(t, commits, got)
}

func TestApplyCommitFiltersByUser(t *testing.T) {
	got := summary.ApplyCommitFilters(sampleCommits(), summary.CommitFilters{
		Users: []string{"alice"},
	})
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, "alice", c.Author)
	}
}

func TestApplyCommitFiltersCurrentUserPlaceholder(t *testing.T) {
	got := summary.ApplyCommitFilters(sampleCommits(), summary.CommitFilters{
		Users:       []string{model.CurrentUserPlaceholder},
		CurrentUser: "bob",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].Author)
}

func TestApplyCommitFiltersByDateRange(t *testing.T) {
	dateRange := model.DateRange{
		Start: time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 6, 17, 23, 59, 59, 0, time.UTC),
	}
	commits := append(sampleCommits(), model.Commit{SHA: "x", Author: "eve", Date: "not-a-date"})

	got := summary.ApplyCommitFilters(commits, summary.CommitFilters{DateRange: &dateRange})
	require.Len(t, got, 2, "outside-range and undated commits are dropped")
	assert.Equal(t, "b1", got[0].SHA)
	assert.Equal(t, "a2", got[1].SHA)
}

func TestApplyCommitFiltersCombineWithAnd(t *testing.T) {
	got := summary.ApplyCommitFilters(sampleCommits(), summary.CommitFilters{
		Users:        []string{"alice"},
		Repositories: []string{"acme/backend"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "a2", got[0].SHA)
}

func TestApplyCommitFiltersDoesNotMutateInput(t *testing.T) {
	commits := sampleCommits()
	_ = summary.ApplyCommitFilters(commits, summary.CommitFilters{Users: []string{"nobody"}})
	assert.Equal(t, sampleCommits(), commits)
}
