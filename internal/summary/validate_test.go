package summary_test

import (
	"strings"
	"testing"
	"time"

	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) summary.Config {
	t.Helper()
	cfg := summary.Config{}
	require.NoError(t, cfg.PrepareAndValidate())
	return cfg
}

func validRawRequest() model.RawSummaryRequest {
	return model.RawSummaryRequest{
		Repositories: []string{"acme/frontend", "acme/backend"},
		StartDate:    "2023-06-01",
		EndDate:      "2023-06-30",
		Users:        []string{"alice"},
		Branch:       "main",
	}
}

func TestValidateRequestSuccess(t *testing.T) {
	validated := summary.ValidateRequest(validRawRequest(), testConfig(t))
	request, ok := validated.Value()
	require.True(t, ok, "expected success, got: %v", validated.Err())

	assert.Equal(t, []string{"acme/frontend", "acme/backend"}, request.Repositories)
	assert.Equal(t, []string{"alice"}, request.Users)
	assert.Equal(t, "main", request.Branch)
	assert.Equal(t, 30, request.DateRange.Days())
}

func TestValidateRequestAcceptsTimestamps(t *testing.T) {
	raw := validRawRequest()
	raw.StartDate = "2023-06-01T00:00:00Z"
	raw.EndDate = "2023-06-30T23:59:59Z"

	validated := summary.ValidateRequest(raw, testConfig(t))
	require.True(t, validated.IsSuccess(), "got: %v", validated.Err())
}

func TestValidateRequestViolations(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name   string
		mutate func(*model.RawSummaryRequest)
		field  string
		code   string
	}{
		{
			name:   "empty repositories",
			mutate: func(r *model.RawSummaryRequest) { r.Repositories = nil },
			field:  "repositories",
			code:   model.CodeRequired,
		},
		{
			name: "malformed repository",
			mutate: func(r *model.RawSummaryRequest) {
				r.Repositories = []string{"not-a-repository"}
			},
			field: "repositories",
			code:  model.CodeMalformed,
		},
		{
			name: "too many repositories",
			mutate: func(r *model.RawSummaryRequest) {
				repos := make([]string, cfg.MaxRepositories+1)
				for i := range repos {
					repos[i] = "acme/repo"
				}
				r.Repositories = repos
			},
			field: "repositories",
			code:  model.CodeTooMany,
		},
		{
			name:   "unparseable start date",
			mutate: func(r *model.RawSummaryRequest) { r.StartDate = "June 1st" },
			field:  "dateRange",
			code:   model.CodeMalformed,
		},
		{
			name: "start after end",
			mutate: func(r *model.RawSummaryRequest) {
				r.StartDate = "2023-06-30"
				r.EndDate = "2023-06-01"
			},
			field: "dateRange",
			code:  model.CodeInvalidRange,
		},
		{
			name: "range too long",
			mutate: func(r *model.RawSummaryRequest) {
				r.StartDate = "2020-01-01"
				r.EndDate = "2023-01-01"
			},
			field: "dateRange",
			code:  model.CodeInvalidRange,
		},
		{
			name: "future end date",
			mutate: func(r *model.RawSummaryRequest) {
				r.StartDate = time.Now().AddDate(0, 0, 1).Format(time.DateOnly)
				r.EndDate = time.Now().AddDate(0, 0, 2).Format(time.DateOnly)
			},
			field: "dateRange",
			code:  model.CodeFutureDate,
		},
		{
			name: "too many users",
			mutate: func(r *model.RawSummaryRequest) {
				users := make([]string, cfg.MaxUsers+1)
				for i := range users {
					users[i] = "user"
				}
				r.Users = users
			},
			field: "users",
			code:  model.CodeTooMany,
		},
		{
			name: "branch too long",
			mutate: func(r *model.RawSummaryRequest) {
				r.Branch = strings.Repeat("b", cfg.MaxBranchNameLength+1)
			},
			field: "branch",
			code:  model.CodeTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawRequest()
			tt.mutate(&raw)

			validated := summary.ValidateRequest(raw, cfg)
			require.False(t, validated.IsSuccess())

			var errs model.ValidationErrors
			require.ErrorAs(t, validated.Err(), &errs)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}
}

func TestValidateRequestCollectsEveryViolation(t *testing.T) {
	raw := model.RawSummaryRequest{
		Repositories: nil,
		StartDate:    "not-a-date",
		EndDate:      "2023-06-30",
		Branch:       strings.Repeat("x", 300),
	}

	validated := summary.ValidateRequest(raw, testConfig(t))
	require.False(t, validated.IsSuccess())

	var errs model.ValidationErrors
	require.ErrorAs(t, validated.Err(), &errs)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	// Independent rules: all three violations are reported at once.
	assert.ElementsMatch(t, []string{"repositories", "dateRange", "branch"}, fields)
}

func TestResolveCurrentUser(t *testing.T) {
	raw := model.RawSummaryRequest{Users: []string{"alice", "me", "bob"}}

	resolved := summary.ResolveCurrentUser(raw, "carol")
	assert.Equal(t, []string{"alice", "carol", "bob"}, resolved.Users)
	assert.Equal(t, []string{"alice", "me", "bob"}, raw.Users, "input must not be mutated")

	untouched := summary.ResolveCurrentUser(raw, "")
	assert.Equal(t, raw.Users, untouched.Users)
}
