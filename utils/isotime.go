package utils

import "time"

const (
	DateLayout = "2006-01-02"

	timestampLayout       = "2006-01-02T15:04:05"
	timestampMicrosLayout = "2006-01-02T15:04:05.000000"
)

// FormatDate renders a calendar date as YYYY-MM-DD, nil stays nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// FormatTimestamp renders a naive ISO-8601 timestamp. Microseconds are printed only when non-zero.
func FormatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	layout := timestampLayout
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		layout = timestampMicrosLayout
	}
	s := t.Format(layout)
	return &s
}
