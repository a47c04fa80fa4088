package utils

import (
	"fmt"
	"sync"
	"time"

	"tidify/config"
)

var (
	localOnce sync.Once
	localLoc  *time.Location
)

// LocalLocation returns the configured local timezone, falling back to UTC
// when the zone name cannot be resolved. The lookup is cached.
func LocalLocation() *time.Location {
	localOnce.Do(func() {
		name := "Asia/Kolkata"
		if config.AppConfig.LocalTZ != "" {
			name = config.AppConfig.LocalTZ
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			GetLogger().Sugar().Warnf("Unknown timezone %q, falling back to UTC", name)
			loc = time.UTC
		}
		localLoc = loc
	})
	return localLoc
}

// NowISO returns the current local time as an RFC3339 string with second
// precision, e.g. "2025-03-14T10:30:00+05:30".
func NowISO() string {
	return time.Now().In(LocalLocation()).Format(time.RFC3339)
}

// ParseHHMM parses a wall-clock time in "HH:MM" form into minutes since
// midnight.
func ParseHHMM(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHHMM renders minutes since midnight as "HH:MM".
func FormatHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate validates a calendar date in "YYYY-MM-DD" form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
