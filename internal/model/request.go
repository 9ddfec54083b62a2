package model

import (
	"strings"
	"time"
)

// DateRange is an inclusive time span.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the inclusive span length in whole days.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// RawSummaryRequest is the untyped input as it arrives from the dashboard.
// It becomes a SummaryRequest only after validation.
type RawSummaryRequest struct {
	Repositories []string `json:"repositories"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Users        []string `json:"users,omitempty"`
	Branch       string   `json:"branch,omitempty"`
}

// SummaryRequest is a validated, normalized summary request.
// Once constructed it is never mutated; a new request supersedes it.
type SummaryRequest struct {
	Repositories []string
	DateRange    DateRange
	Users        []string
	Branch       string
}

// ValidationError describes a single field-level violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationErrors aggregates every violation found in one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, len(e))
	for i, v := range e {
		messages[i] = v.Field + ": " + v.Message
	}
	return strings.Join(messages, "; ")
}

// Validation error codes.
const (
	CodeRequired     = "required"
	CodeTooMany      = "too_many"
	CodeTooLong      = "too_long"
	CodeMalformed    = "malformed"
	CodeInvalidRange = "invalid_range"
	CodeFutureDate   = "future_date"
)

// CurrentUserPlaceholder is the literal users entry that callers resolve to
// a concrete login before validation.
const CurrentUserPlaceholder = "me"
