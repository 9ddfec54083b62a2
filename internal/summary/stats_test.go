package summary_test

import (
	"testing"

	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCommits() []model.Commit {
	return []model.Commit{
		{SHA: "a1", Author: "alice", Repository: "acme/frontend", Date: "2023-06-15T10:00:00Z", Additions: 10, Deletions: 2},
		{SHA: "b1", Author: "bob", Repository: "acme/frontend", Date: "2023-06-16T11:00:00Z", Additions: 5, Deletions: 5},
		{SHA: "a2", Author: "alice", Repository: "acme/backend", Date: "2023-06-17T12:00:00Z", Additions: 1, Deletions: 0},
	}
}

func TestCalculateSummaryStats(t *testing.T) {
	stats := summary.CalculateSummaryStats(sampleCommits(), testConfig(t))

	assert.Equal(t, 3, stats.TotalCommits)
	assert.Equal(t, 2, stats.UniqueAuthors)
	assert.Equal(t, []string{"acme/frontend", "acme/backend"}, stats.Repositories)
	assert.Equal(t, 16, stats.TotalAdditions)
	assert.Equal(t, 7, stats.TotalDeletions)
	assert.InDelta(t, 1.0, stats.AverageCommitsPerDay, 1e-9)

	assert.Equal(t, map[string]int{"2023-06-15": 1, "2023-06-16": 1, "2023-06-17": 1}, stats.CommitsByDay)
	assert.Equal(t, map[string]int{"alice": 2, "bob": 1}, stats.CommitsByAuthor)

	require.Len(t, stats.TopRepositories, 2)
	assert.Equal(t, model.RepositoryActivity{Name: "acme/frontend", Commits: 2}, stats.TopRepositories[0])
	assert.Equal(t, model.RepositoryActivity{Name: "acme/backend", Commits: 1}, stats.TopRepositories[1])

	assert.False(t, stats.Partial)
}

func TestCalculateSummaryStatsEmptyInput(t *testing.T) {
	stats := summary.CalculateSummaryStats(nil, testConfig(t))

	assert.Zero(t, stats.TotalCommits)
	assert.Zero(t, stats.UniqueAuthors)
	assert.Empty(t, stats.Repositories)
	assert.Equal(t, "", stats.MostActiveDay)
	assert.Zero(t, stats.AverageCommitsPerDay)
	assert.Empty(t, stats.TopRepositories)
}

func TestEveryCommitLandsInExactlyOneDayBucket(t *testing.T) {
	commits := sampleCommits()
	counts := summary.CommitCountByDay(commits)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(commits), total)
}

func TestMalformedDatesAreExcludedFromDayBuckets(t *testing.T) {
	commits := append(sampleCommits(), model.Commit{SHA: "x", Author: "eve", Repository: "acme/frontend", Date: "yesterday"})

	counts := summary.CommitCountByDay(commits)
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 3, total, "the undated commit is skipped")

	// Date-independent aggregates still count it.
	stats := summary.CalculateSummaryStats(commits, testConfig(t))
	assert.Equal(t, 4, stats.TotalCommits)
	assert.Equal(t, 3, stats.UniqueAuthors)
}

func TestFindMostActiveDay(t *testing.T) {
	assert.Equal(t, "", summary.FindMostActiveDay(nil))

	commits := []model.Commit{
		{Date: "2023-06-16T09:00:00Z"},
		{Date: "2023-06-15T10:00:00Z"},
		{Date: "2023-06-15T11:00:00Z"},
	}
	assert.Equal(t, "2023-06-15", summary.FindMostActiveDay(commits))
}

func TestFindMostActiveDayTieKeepsFirstSeen(t *testing.T) {
	commits := []model.Commit{
		{Date: "2023-06-16T09:00:00Z"},
		{Date: "2023-06-15T10:00:00Z"},
		{Date: "2023-06-16T11:00:00Z"},
		{Date: "2023-06-15T12:00:00Z"},
	}
	// Both days have two commits; the first-seen day wins deterministically.
	assert.Equal(t, "2023-06-16", summary.FindMostActiveDay(commits))
}

func TestAverageCommitsPerDay(t *testing.T) {
	assert.Zero(t, summary.AverageCommitsPerDay(nil))

	commits := []model.Commit{
		{Date: "2023-06-15T10:00:00Z"},
		{Date: "2023-06-15T11:00:00Z"},
		{Date: "2023-06-16T12:00:00Z"},
	}
	assert.InDelta(t, 1.5, summary.AverageCommitsPerDay(commits), 1e-9)
}

func TestTopRepositoriesByCommits(t *testing.T) {
	commits := []model.Commit{
		{Repository: "acme/a"},
		{Repository: "acme/b"},
		{Repository: "acme/b"},
		{Repository: "acme/c"},
	}

	top := summary.TopRepositoriesByCommits(commits, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "acme/b", top[0].Name)
	assert.Equal(t, 2, top[0].Commits)
	// Tie between a and c resolves to first-seen.
	assert.Equal(t, "acme/a", top[1].Name)
}

func TestGroupCommitsByAuthorIsAPartition(t *testing.T) {
	commits := sampleCommits()
	groups := summary.GroupCommitsByAuthor(commits)

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, len(commits), total)
}
