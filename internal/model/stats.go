package model

// RepositoryActivity is one entry of the top-repositories ranking.
type RepositoryActivity struct {
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}

// SummaryStats is the aggregated report computed from a set of commits.
// It is derived entirely from the commit list, never persisted and
// regenerated per request.
type SummaryStats struct {
	TotalCommits         int                  `json:"total_commits"`
	UniqueAuthors        int                  `json:"unique_authors"`
	Repositories         []string             `json:"repositories"`
	MostActiveDay        string               `json:"most_active_day"`
	AverageCommitsPerDay float64              `json:"average_commits_per_day"`
	TotalAdditions       int                  `json:"total_additions"`
	TotalDeletions       int                  `json:"total_deletions"`
	CommitsByDay         map[string]int       `json:"commits_by_day"`
	CommitsByAuthor      map[string]int       `json:"commits_by_author"`
	TopRepositories      []RepositoryActivity `json:"top_repositories"`

	// Partial marks that at least one auth-context group failed to fetch
	// and the stats were computed from an incomplete commit set.
	Partial bool `json:"partial,omitempty"`
}

// DailyStats is the per-day breakdown of commit activity.
type DailyStats struct {
	Date      string `json:"date"`
	Commits   int    `json:"commits"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Authors   int    `json:"authors"`
}

// AuthorStats is the per-author breakdown of commit activity.
type AuthorStats struct {
	Author       string   `json:"author"`
	Commits      int      `json:"commits"`
	Additions    int      `json:"additions"`
	Deletions    int      `json:"deletions"`
	Repositories []string `json:"repositories"`
	ActiveDays   int      `json:"active_days"`
}

// RepositoryStats is the per-repository breakdown of commit activity.
type RepositoryStats struct {
	Repository string   `json:"repository"`
	Commits    int      `json:"commits"`
	Additions  int      `json:"additions"`
	Deletions  int      `json:"deletions"`
	Authors    []string `json:"authors"`
	FirstDay   string   `json:"first_day"`
	LastDay    string   `json:"last_day"`
}

// CodeChangeStats summarizes line-level churn across a commit set.
type CodeChangeStats struct {
	TotalAdditions     int     `json:"total_additions"`
	TotalDeletions     int     `json:"total_deletions"`
	NetChange          int     `json:"net_change"`
	AveragePerCommit   float64 `json:"average_per_commit"`
	LargestCommitSHA   string  `json:"largest_commit_sha"`
	LargestCommitLines int     `json:"largest_commit_lines"`
}

// TimeSeriesAnalysis is the day-ordered activity series with streaks.
type TimeSeriesAnalysis struct {
	Days          []DailyStats `json:"days"`
	LongestStreak int          `json:"longest_streak"`
	CurrentStreak int          `json:"current_streak"`
	BusiestDay    string       `json:"busiest_day"`
	QuietestDay   string       `json:"quietest_day"`
}

// SummaryReport is what the HTTP shell returns to the dashboard: computed
// statistics plus an optional AI-generated narrative.
type SummaryReport struct {
	Stats     SummaryStats `json:"stats"`
	Narrative string       `json:"narrative,omitempty"`
}
