package domain

import (
	"fmt"
	"time"
)

// NormalizedTimestampLayout is the external address of a topic version:
// its creation time truncated to whole seconds, in UTC.
const NormalizedTimestampLayout = "2006-01-02_15:04:05"

// NormalizeTimestamp renders a version creation time in its
// second-truncated external form.
func NormalizeTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(NormalizedTimestampLayout)
}

// ParseNormalizedTimestamp parses the external form back into a UTC
// instant at whole-second resolution.
func ParseNormalizedTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(NormalizedTimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, NewValidationError("timestamp", "must be YYYY-MM-DD_HH:MM:SS"))
	}
	return t.UTC(), nil
}
