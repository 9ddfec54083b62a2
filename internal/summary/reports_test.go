package summary_test

import (
	"testing"

	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDailyStatsSortedAscending(t *testing.T) {
	commits := []model.Commit{
		{Author: "alice", Date: "2023-06-17T10:00:00Z", Additions: 1},
		{Author: "bob", Date: "2023-06-15T10:00:00Z", Additions: 2, Deletions: 1},
		{Author: "alice", Date: "2023-06-15T11:00:00Z", Additions: 3},
	}

	days := summary.CalculateDailyStats(commits)
	require.Len(t, days, 2)

	assert.Equal(t, "2023-06-15", days[0].Date)
	assert.Equal(t, 2, days[0].Commits)
	assert.Equal(t, 5, days[0].Additions)
	assert.Equal(t, 1, days[0].Deletions)
	assert.Equal(t, 2, days[0].Authors)

	assert.Equal(t, "2023-06-17", days[1].Date)
	assert.Equal(t, 1, days[1].Commits)
}

func TestCalculateAuthorStatsKeepsFirstSeenOrder(t *testing.T) {
	stats := summary.CalculateAuthorStats(sampleCommits())
	require.Len(t, stats, 2)

	assert.Equal(t, "alice", stats[0].Author)
	assert.Equal(t, 2, stats[0].Commits)
	assert.Equal(t, []string{"acme/frontend", "acme/backend"}, stats[0].Repositories)
	assert.Equal(t, 2, stats[0].ActiveDays)

	assert.Equal(t, "bob", stats[1].Author)
	assert.Equal(t, 1, stats[1].Commits)
}

func TestCalculateRepositoryStats(t *testing.T) {
	stats := summary.CalculateRepositoryStats(sampleCommits())
	require.Len(t, stats, 2)

	frontend := stats[0]
	assert.Equal(t, "acme/frontend", frontend.Repository)
	assert.Equal(t, 2, frontend.Commits)
	assert.Equal(t, []string{"alice", "bob"}, frontend.Authors)
	assert.Equal(t, "2023-06-15", frontend.FirstDay)
	assert.Equal(t, "2023-06-16", frontend.LastDay)
}

func TestCalculateCodeChangeStats(t *testing.T) {
	stats := summary.CalculateCodeChangeStats(sampleCommits())

	assert.Equal(t, 16, stats.TotalAdditions)
	assert.Equal(t, 7, stats.TotalDeletions)
	assert.Equal(t, 9, stats.NetChange)
	assert.InDelta(t, 23.0/3.0, stats.AveragePerCommit, 1e-9)
	assert.Equal(t, "a1", stats.LargestCommitSHA)
	assert.Equal(t, 12, stats.LargestCommitLines)

	empty := summary.CalculateCodeChangeStats(nil)
	assert.Zero(t, empty.AveragePerCommit)
	assert.Empty(t, empty.LargestCommitSHA)
}

func TestGenerateTimeSeriesAnalysis(t *testing.T) {
	commits := []model.Commit{
		{Date: "2023-06-15T10:00:00Z"},
		{Date: "2023-06-15T11:00:00Z"},
		{Date: "2023-06-16T10:00:00Z"},
		{Date: "2023-06-18T10:00:00Z"},
	}

	analysis := summary.GenerateTimeSeriesAnalysis(commits)
	require.Len(t, analysis.Days, 3)

	assert.Equal(t, "2023-06-15", analysis.BusiestDay)
	assert.Equal(t, "2023-06-16", analysis.QuietestDay)
	assert.Equal(t, 2, analysis.LongestStreak, "15th and 16th are consecutive")
	assert.Equal(t, 1, analysis.CurrentStreak, "the 18th stands alone")
}

func TestGenerateTimeSeriesAnalysisUnbrokenStreak(t *testing.T) {
	commits := []model.Commit{
		{Date: "2023-06-15T10:00:00Z"},
		{Date: "2023-06-16T10:00:00Z"},
		{Date: "2023-06-17T10:00:00Z"},
	}

	analysis := summary.GenerateTimeSeriesAnalysis(commits)
	assert.Equal(t, 3, analysis.LongestStreak)
	assert.Equal(t, 3, analysis.CurrentStreak)
}

func TestGenerateTimeSeriesAnalysisEmpty(t *testing.T) {
	analysis := summary.GenerateTimeSeriesAnalysis(nil)
	assert.Empty(t, analysis.Days)
	assert.Zero(t, analysis.LongestStreak)
	assert.Zero(t, analysis.CurrentStreak)
	assert.Empty(t, analysis.BusiestDay)
}
