package shared

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate accepts RFC3339 or YYYY-MM-DD and returns a UTC value.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), nil
	}
	return time.Parse(DateLayout, value)
}
