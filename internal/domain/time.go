package domain

import "time"

// TimeLayout is the timestamp format used in all data files.
const TimeLayout = "2006-01-02 15:04:05"

// Now returns the current local time truncated to whole seconds, the
// resolution the file format can represent.
func Now() time.Time { return time.Now().Truncate(time.Second) }

// FormatTime renders t in the file layout. The zero time renders as the
// empty string (an auction that has not completed yet).
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}

// ParseTime is the inverse of FormatTime.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(TimeLayout, s, time.Local)
}
