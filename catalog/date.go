package catalog

import (
	"strings"
	"time"
)

// DateLayout is the wire and form format of calendar dates.
const DateLayout = "2006-01-02"

// DateOf drops the time of day of t and returns the calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar date at midnight UTC.
func Today() time.Time {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return DateOf(t), nil
}

// ParseOptionalDate parses a YYYY-MM-DD string, treating blank input as "no date".
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil //nolint:nilnil // a blank date is a valid null
	}

	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// FormatDate renders an optional calendar date, using the empty string for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(DateLayout)
}

// DatePtr returns a pointer to the calendar date of t.
func DatePtr(t time.Time) *time.Time {
	d := DateOf(t)
	return &d
}
