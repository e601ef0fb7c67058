package models

import "time"

// Filter holds the board's five filter criteria. Every criterion is
// optional; the zero value matches all tasks. Active criteria are combined
// with logical AND.
type Filter struct {
	Search    string   // case-insensitive substring match against Title
	ProjectID string   // exact match
	Priority  Priority // exact match
	DueFrom   *time.Time
	DueTo     *time.Time
}

// Active reports whether any criterion is set
func (f Filter) Active() bool {
	return f.Search != "" ||
		f.ProjectID != "" ||
		f.Priority != "" ||
		f.DueFrom != nil ||
		f.DueTo != nil
}

// filterDateFormats are the accepted layouts for date bounds entered as text
var filterDateFormats = []string{"2006-01-02", time.RFC3339}

// ParseDate converts a user-entered date string into a filter bound.
// An empty or unparseable string yields nil, which the filter engine
// treats as an absent bound rather than an error.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range filterDateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}
