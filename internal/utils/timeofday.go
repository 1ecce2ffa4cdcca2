package utils

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// ParseTimeOfDay parses a "HH:MM" form value into a time-of-day column value.
func ParseTimeOfDay(value string) (datatypes.Time, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return datatypes.Time(0), fmt.Errorf("invalid time %q, expected HH:MM", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return datatypes.Time(0), fmt.Errorf("invalid hour in %q, expected HH:MM", value)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return datatypes.Time(0), fmt.Errorf("invalid minute in %q, expected HH:MM", value)
	}

	return datatypes.NewTime(hour, minute, 0, 0), nil
}

// FormatTimeOfDay renders a time-of-day column value back to "HH:MM".
func FormatTimeOfDay(t datatypes.Time) string {
	full := t.String()
	if len(full) >= 5 {
		return full[:5]
	}
	return full
}
