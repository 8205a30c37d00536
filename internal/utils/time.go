package utils

import (
	"strings"
	"time"
)

const (
	layoutDate        = "2006-01-02"
	layoutClock       = "15:04:05"
	layoutClockNoSecs = "15:04"
)

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// ParseClock parses HH:MM:SS, tolerating sources that drop seconds.
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(layoutClock, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(layoutClockNoSecs, s)
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatClock formats time to HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format(layoutClock)
}
