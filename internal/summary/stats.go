package summary

import (
	"github.com/maxbolgarin/gitpulse/internal/fn"
	"github.com/maxbolgarin/gitpulse/internal/model"
)

// The statistics generator is a set of pure functions over a commit list.
// Each aggregate is an independent grouping pass; commit volumes are
// hundreds to low thousands per request, so clarity wins over a single
// fused pass. Commits with malformed dates are excluded from date-bucketed
// aggregates but still count toward date-independent totals.

// keyCount is an ordered counter entry: keys appear in first-seen order so a
// stable sort keeps first-seen order among equal counts.
type keyCount struct {
	Key   string
	Count int
}

// countByKey tallies commits per key, preserving first-seen key order.
// Commits for which keyOf reports false are skipped.
func countByKey(commits []model.Commit, keyOf func(model.Commit) (string, bool)) []keyCount {
	index := make(map[string]int, len(commits))
	counts := make([]keyCount, 0, len(commits))
	for _, c := range commits {
		key, ok := keyOf(c)
		if !ok {
			continue
		}
		if i, seen := index[key]; seen {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, keyCount{Key: key, Count: 1})
	}
	return counts
}

var sortByCountDesc = fn.SortBy(func(a, b keyCount) bool { return a.Count > b.Count })

// GroupCommitsByDay buckets commits by ISO date truncated to a day.
func GroupCommitsByDay(commits []model.Commit) map[string][]model.Commit {
	withDates := fn.Filter(func(c model.Commit) bool {
		_, ok := c.DayKey()
		return ok
	})(commits)
	return fn.GroupBy(func(c model.Commit) string {
		day, _ := c.DayKey()
		return day
	})(withDates)
}

// GroupCommitsByAuthor buckets commits by author identifier.
func GroupCommitsByAuthor(commits []model.Commit) map[string][]model.Commit {
	return fn.GroupBy(func(c model.Commit) string { return c.Author })(commits)
}

// GroupCommitsByRepository buckets commits by owner/name repository.
func GroupCommitsByRepository(commits []model.Commit) map[string][]model.Commit {
	return fn.GroupBy(func(c model.Commit) string { return c.Repository })(commits)
}

// CommitCountByDay returns the commit count per day. Every commit with a
// parseable date lands in exactly one bucket.
func CommitCountByDay(commits []model.Commit) map[string]int {
	counts := countByKey(commits, model.Commit.DayKey)
	out := make(map[string]int, len(counts))
	for _, kc := range counts {
		out[kc.Key] = kc.Count
	}
	return out
}

// CommitCountByAuthor returns the commit count per author.
func CommitCountByAuthor(commits []model.Commit) map[string]int {
	counts := countByKey(commits, func(c model.Commit) (string, bool) { return c.Author, true })
	out := make(map[string]int, len(counts))
	for _, kc := range counts {
		out[kc.Key] = kc.Count
	}
	return out
}

// FindMostActiveDay returns the day with the most commits, or "" for an
// empty input. Ties resolve to the first-seen day: the sort is stable over
// first-seen key order, which is observable and relied upon by callers.
func FindMostActiveDay(commits []model.Commit) string {
	counts := sortByCountDesc(countByKey(commits, model.Commit.DayKey))
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Key
}

// AverageCommitsPerDay divides dated commits across the distinct days they
// touch. Returns 0 for input with no dated commits.
func AverageCommitsPerDay(commits []model.Commit) float64 {
	counts := countByKey(commits, model.Commit.DayKey)
	if len(counts) == 0 {
		return 0
	}
	total := 0
	for _, kc := range counts {
		total += kc.Count
	}
	return float64(total) / float64(len(counts))
}

// TopRepositoriesByCommits ranks repositories by descending commit count,
// truncated to limit. Ties keep first-seen repository order.
func TopRepositoriesByCommits(commits []model.Commit, limit int) []model.RepositoryActivity {
	counts := fn.Take[keyCount](limit)(sortByCountDesc(countByKey(commits,
		func(c model.Commit) (string, bool) { return c.Repository, true })))
	return fn.Map(func(kc keyCount) model.RepositoryActivity {
		return model.RepositoryActivity{Name: kc.Key, Commits: kc.Count}
	})(counts)
}

// UniqueRepositories returns repository names deduplicated in first-seen order.
func UniqueRepositories(commits []model.Commit) []string {
	unique := fn.UniqueBy(func(c model.Commit) string { return c.Repository })(commits)
	return fn.Map(func(c model.Commit) string { return c.Repository })(unique)
}

// CalculateSummaryStats reduces a commit list into the primary statistics
// object returned to the dashboard.
func CalculateSummaryStats(commits []model.Commit, cfg Config) model.SummaryStats {
	totalAdditions, totalDeletions := 0, 0
	for _, c := range commits {
		totalAdditions += c.Additions
		totalDeletions += c.Deletions
	}

	return model.SummaryStats{
		TotalCommits:         len(commits),
		UniqueAuthors:        len(CommitCountByAuthor(commits)),
		Repositories:         UniqueRepositories(commits),
		MostActiveDay:        FindMostActiveDay(commits),
		AverageCommitsPerDay: AverageCommitsPerDay(commits),
		TotalAdditions:       totalAdditions,
		TotalDeletions:       totalDeletions,
		CommitsByDay:         CommitCountByDay(commits),
		CommitsByAuthor:      CommitCountByAuthor(commits),
		TopRepositories:      TopRepositoriesByCommits(commits, cfg.TopRepositoriesLimit),
	}
}
