package summary

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/result"
)

var repositoryNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*/[A-Za-z0-9._-]+$`)

// ValidateRequest checks a raw summary request against the configured limits
// and returns either a normalized request or every violation found. It never
// performs I/O and never panics: all rules are checked independently so the
// caller sees the full list of problems, not just the first.
func ValidateRequest(raw model.RawSummaryRequest, cfg Config) result.Result[model.SummaryRequest] {
	var errs model.ValidationErrors

	repositories, repoErrs := validateRepositories(raw.Repositories, cfg)
	errs = append(errs, repoErrs...)

	dateRange, dateErrs := validateDateRange(raw.StartDate, raw.EndDate, cfg)
	errs = append(errs, dateErrs...)

	if len(raw.Users) > cfg.MaxUsers {
		errs = append(errs, model.ValidationError{
			Field:   "users",
			Message: fmt.Sprintf("at most %d users are allowed, got %d", cfg.MaxUsers, len(raw.Users)),
			Code:    model.CodeTooMany,
		})
	}

	branch := strings.TrimSpace(raw.Branch)
	if len(branch) > cfg.MaxBranchNameLength {
		errs = append(errs, model.ValidationError{
			Field:   "branch",
			Message: fmt.Sprintf("branch name must be at most %d characters", cfg.MaxBranchNameLength),
			Code:    model.CodeTooLong,
		})
	}

	if len(errs) > 0 {
		return result.Failure[model.SummaryRequest](errs)
	}

	return result.Success(model.SummaryRequest{
		Repositories: repositories,
		DateRange:    dateRange,
		Users:        raw.Users,
		Branch:       branch,
	})
}

func validateRepositories(raw []string, cfg Config) ([]string, model.ValidationErrors) {
	var errs model.ValidationErrors

	if len(raw) == 0 {
		errs = append(errs, model.ValidationError{
			Field:   "repositories",
			Message: "at least one repository is required",
			Code:    model.CodeRequired,
		})
		return nil, errs
	}
	if len(raw) > cfg.MaxRepositories {
		errs = append(errs, model.ValidationError{
			Field:   "repositories",
			Message: fmt.Sprintf("at most %d repositories are allowed, got %d", cfg.MaxRepositories, len(raw)),
			Code:    model.CodeTooMany,
		})
	}

	repositories := make([]string, 0, len(raw))
	for _, entry := range raw {
		name := strings.TrimSpace(entry)
		if !repositoryNameRe.MatchString(name) {
			// Malformed entries are reported, not silently dropped.
			errs = append(errs, model.ValidationError{
				Field:   "repositories",
				Message: fmt.Sprintf("repository %q does not match the owner/name format", entry),
				Code:    model.CodeMalformed,
			})
			continue
		}
		repositories = append(repositories, name)
	}

	return repositories, errs
}

func validateDateRange(start, end string, cfg Config) (model.DateRange, model.ValidationErrors) {
	var errs model.ValidationErrors

	startTime, startErr := parseDate(start)
	if startErr != nil {
		errs = append(errs, model.ValidationError{
			Field:   "dateRange",
			Message: fmt.Sprintf("start date %q is not a valid date", start),
			Code:    model.CodeMalformed,
		})
	}
	endTime, endErr := parseDate(end)
	if endErr != nil {
		errs = append(errs, model.ValidationError{
			Field:   "dateRange",
			Message: fmt.Sprintf("end date %q is not a valid date", end),
			Code:    model.CodeMalformed,
		})
	}
	if startErr != nil || endErr != nil {
		return model.DateRange{}, errs
	}

	if startTime.After(endTime) {
		errs = append(errs, model.ValidationError{
			Field:   "dateRange",
			Message: "start date must not be after end date",
			Code:    model.CodeInvalidRange,
		})
		return model.DateRange{}, errs
	}

	dateRange := model.DateRange{Start: startTime, End: endTime}

	if days := dateRange.Days(); days > cfg.MaxDateRangeDays {
		errs = append(errs, model.ValidationError{
			Field:   "dateRange",
			Message: fmt.Sprintf("date range must span at most %d days, got %d", cfg.MaxDateRangeDays, days),
			Code:    model.CodeInvalidRange,
		})
	} else if days < cfg.MinDateRangeDays {
		errs = append(errs, model.ValidationError{
			Field:   "dateRange",
			Message: fmt.Sprintf("date range must span at least %d days, got %d", cfg.MinDateRangeDays, days),
			Code:    model.CodeInvalidRange,
		})
	}

	if !cfg.AllowFutureDates && endTime.After(time.Now()) {
		errs = append(errs, model.ValidationError{
			Field:   "dateRange",
			Message: "future dates are not allowed",
			Code:    model.CodeFutureDate,
		})
	}

	return dateRange, errs
}

// ResolveCurrentUser replaces the "me" placeholder in the raw request's
// users with a concrete login. It is a pre-processing step performed by the
// caller before validation; an empty login leaves the request untouched.
func ResolveCurrentUser(raw model.RawSummaryRequest, login string) model.RawSummaryRequest {
	if login == "" || len(raw.Users) == 0 {
		return raw
	}
	users := make([]string, len(raw.Users))
	for i, user := range raw.Users {
		if user == model.CurrentUserPlaceholder {
			user = login
		}
		users[i] = user
	}
	raw.Users = users
	return raw
}

// parseDate accepts a full RFC 3339 timestamp or a bare 2006-01-02 date.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}
