package model_test

import (
	"testing"
	"time"

	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitParsedTime(t *testing.T) {
	commit := model.Commit{Date: "2023-06-15T10:30:00Z"}
	parsed, ok := commit.ParsedTime()
	require.True(t, ok)
	assert.Equal(t, 2023, parsed.Year())

	day, ok := commit.DayKey()
	require.True(t, ok)
	assert.Equal(t, "2023-06-15", day)

	_, ok = model.Commit{Date: "last tuesday"}.ParsedTime()
	assert.False(t, ok)
	_, ok = model.Commit{}.DayKey()
	assert.False(t, ok)
}

func TestDateRange(t *testing.T) {
	r := model.DateRange{
		Start: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 30, r.Days())
	assert.True(t, r.Contains(time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.End.Add(time.Second)))
	assert.False(t, r.Contains(r.Start.Add(-time.Second)))

	oneDay := model.DateRange{Start: r.Start, End: r.Start}
	assert.Equal(t, 1, oneDay.Days())
}

func TestValidationErrorsError(t *testing.T) {
	errs := model.ValidationErrors{
		{Field: "repositories", Message: "at least one repository is required"},
		{Field: "branch", Message: "too long"},
	}
	assert.Equal(t, "repositories: at least one repository is required; branch: too long", errs.Error())
}
