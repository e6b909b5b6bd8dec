package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseWhen parses a due date. The empty string yields the zero time.
func ParseWhen(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if when, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return when.UTC(), nil
	}
	if when, err := time.Parse(dateLayout, value); err == nil {
		return when, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWhen, value)
}

// FormatWhen is the inverse of ParseWhen; the zero time formats as "".
func FormatWhen(when time.Time) string {
	if when.IsZero() {
		return ""
	}
	return when.UTC().Format(time.RFC3339Nano)
}

// StatusFor derives the status of a todo due at when, as seen at now.
//
// The labels are inverted relative to their names: a todo due strictly after
// now is "late", one due at or before now is "pending". Existing clients rely
// on this, so it is kept as is.
func StatusFor(when, now time.Time) TodoStatus {
	if when.After(now) {
		return TodoStatusLate
	}
	return TodoStatusPending
}
