package summary

import (
	"github.com/maxbolgarin/gitpulse/internal/fn"
	"github.com/maxbolgarin/gitpulse/internal/model"
)

// CommitFilters narrows a fetched commit set. Filters that are set are
// combined with logical AND; unset filters pass everything through.
type CommitFilters struct {
	// Users keeps commits whose author matches one of the identifiers.
	// The "me" placeholder matches CurrentUser when it is known.
	Users []string

	// CurrentUser resolves the "me" placeholder in Users.
	CurrentUser string

	// DateRange keeps commits whose timestamp falls inside the range.
	// Commits with malformed dates are dropped when the filter is set.
	DateRange *model.DateRange

	// Repositories keeps commits belonging to one of the named repositories.
	Repositories []string
}

// ApplyCommitFilters returns the commits matching every configured filter.
// Pure: the input slice is never mutated.
func ApplyCommitFilters(commits []model.Commit, filters CommitFilters) []model.Commit {
	return fn.Pipe(commits,
		fn.Filter(filters.matchesUser),
		fn.Filter(filters.matchesDateRange),
		fn.Filter(filters.matchesRepository),
	)
}

func (f CommitFilters) matchesUser(c model.Commit) bool {
	if len(f.Users) == 0 {
		return true
	}
	for _, user := range f.Users {
		if user == model.CurrentUserPlaceholder && f.CurrentUser != "" {
			user = f.CurrentUser
		}
		if c.Author == user {
			return true
		}
	}
	return false
}

func (f CommitFilters) matchesDateRange(c model.Commit) bool {
	if f.DateRange == nil {
		return true
	}
	t, ok := c.ParsedTime()
	if !ok {
		return false
	}
	return f.DateRange.Contains(t)
}

func (f CommitFilters) matchesRepository(c model.Commit) bool {
	if len(f.Repositories) == 0 {
		return true
	}
	for _, repo := range f.Repositories {
		if c.Repository == repo {
			return true
		}
	}
	return false
}
