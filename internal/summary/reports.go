package summary

import (
	"sort"
	"time"

	"github.com/maxbolgarin/gitpulse/internal/fn"
	"github.com/maxbolgarin/gitpulse/internal/model"
)

// Extended reports are independent pure functions callable à la carte;
// none of them is baked into the primary SummaryStats object.

// CalculateDailyStats returns per-day activity sorted by date ascending.
// Commits with malformed dates are excluded.
func CalculateDailyStats(commits []model.Commit) []model.DailyStats {
	byDay := GroupCommitsByDay(commits)
	days := make([]model.DailyStats, 0, len(byDay))
	for day, dayCommits := range byDay {
		additions, deletions := sumLineChanges(dayCommits)
		days = append(days, model.DailyStats{
			Date:      day,
			Commits:   len(dayCommits),
			Additions: additions,
			Deletions: deletions,
			Authors:   len(CommitCountByAuthor(dayCommits)),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// CalculateAuthorStats returns per-author activity in first-seen author order.
func CalculateAuthorStats(commits []model.Commit) []model.AuthorStats {
	byAuthor := GroupCommitsByAuthor(commits)
	ordered := fn.UniqueBy(func(c model.Commit) string { return c.Author })(commits)

	stats := make([]model.AuthorStats, 0, len(ordered))
	for _, first := range ordered {
		authorCommits := byAuthor[first.Author]
		additions, deletions := sumLineChanges(authorCommits)
		stats = append(stats, model.AuthorStats{
			Author:       first.Author,
			Commits:      len(authorCommits),
			Additions:    additions,
			Deletions:    deletions,
			Repositories: UniqueRepositories(authorCommits),
			ActiveDays:   len(CommitCountByDay(authorCommits)),
		})
	}
	return stats
}

// CalculateRepositoryStats returns per-repository activity in first-seen
// repository order.
func CalculateRepositoryStats(commits []model.Commit) []model.RepositoryStats {
	byRepo := GroupCommitsByRepository(commits)

	stats := make([]model.RepositoryStats, 0, len(byRepo))
	for _, name := range UniqueRepositories(commits) {
		repoCommits := byRepo[name]
		additions, deletions := sumLineChanges(repoCommits)

		var authors []string
		for _, kc := range countByKey(repoCommits, func(c model.Commit) (string, bool) { return c.Author, true }) {
			authors = append(authors, kc.Key)
		}

		firstDay, lastDay := dayBounds(repoCommits)
		stats = append(stats, model.RepositoryStats{
			Repository: name,
			Commits:    len(repoCommits),
			Additions:  additions,
			Deletions:  deletions,
			Authors:    authors,
			FirstDay:   firstDay,
			LastDay:    lastDay,
		})
	}
	return stats
}

// CalculateCodeChangeStats summarizes line-level churn across the set.
func CalculateCodeChangeStats(commits []model.Commit) model.CodeChangeStats {
	additions, deletions := sumLineChanges(commits)

	stats := model.CodeChangeStats{
		TotalAdditions: additions,
		TotalDeletions: deletions,
		NetChange:      additions - deletions,
	}
	if len(commits) > 0 {
		stats.AveragePerCommit = float64(additions+deletions) / float64(len(commits))
	}

	for _, c := range commits {
		if lines := c.Additions + c.Deletions; lines > stats.LargestCommitLines {
			stats.LargestCommitLines = lines
			stats.LargestCommitSHA = c.SHA
		}
	}
	return stats
}

// GenerateTimeSeriesAnalysis builds the day-ordered activity series with the
// longest and trailing consecutive-day streaks. The trailing streak counts
// back from the last active day, not from today, since the requested range
// may end in the past.
func GenerateTimeSeriesAnalysis(commits []model.Commit) model.TimeSeriesAnalysis {
	days := CalculateDailyStats(commits)
	analysis := model.TimeSeriesAnalysis{Days: days}
	if len(days) == 0 {
		return analysis
	}

	busiest, quietest := days[0], days[0]
	for _, day := range days[1:] {
		if day.Commits > busiest.Commits {
			busiest = day
		}
		if day.Commits < quietest.Commits {
			quietest = day
		}
	}
	analysis.BusiestDay = busiest.Date
	analysis.QuietestDay = quietest.Date

	analysis.LongestStreak, analysis.CurrentStreak = dayStreaks(days)
	return analysis
}

// dayStreaks computes the longest run of consecutive active days and the run
// ending at the last active day. Days come sorted ascending and deduplicated.
func dayStreaks(days []model.DailyStats) (longest, current int) {
	run := 0
	var prev time.Time
	for i, day := range days {
		t, err := time.Parse(time.DateOnly, day.Date)
		if err != nil {
			continue
		}
		if i > 0 && t.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = t
	}
	return longest, run
}

func sumLineChanges(commits []model.Commit) (additions, deletions int) {
	for _, c := range commits {
		additions += c.Additions
		deletions += c.Deletions
	}
	return additions, deletions
}

func dayBounds(commits []model.Commit) (first, last string) {
	for _, c := range commits {
		day, ok := c.DayKey()
		if !ok {
			continue
		}
		if first == "" || day < first {
			first = day
		}
		if day > last {
			last = day
		}
	}
	return first, last
}
