package model

import "time"

// Commit represents a single commit record fetched from a hosting platform.
type Commit struct {
	SHA        string `json:"sha"`
	Message    string `json:"message"`
	Author     string `json:"author"`
	Date       string `json:"date"`
	Repository string `json:"repository"`
	Additions  int    `json:"additions,omitempty"`
	Deletions  int    `json:"deletions,omitempty"`
	URL        string `json:"url,omitempty"`
}

// ParsedTime parses the commit timestamp. Malformed dates report false so
// date-bucketed aggregates can skip the commit instead of failing.
func (c Commit) ParsedTime() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, c.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DayKey returns the commit date truncated to a day, "2006-01-02" form.
func (c Commit) DayKey() (string, bool) {
	t, ok := c.ParsedTime()
	if !ok {
		return "", false
	}
	return t.Format(time.DateOnly), true
}
