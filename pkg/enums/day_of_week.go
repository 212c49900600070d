package enums

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek is a lowercase English weekday name, matching the shifts schema.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var validDaysOfWeek = []DayOfWeek{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// String implements fmt.Stringer.
func (d DayOfWeek) String() string {
	return string(d)
}

// IsValid reports whether the value is a known lowercase weekday name.
func (d DayOfWeek) IsValid() bool {
	for _, candidate := range validDaysOfWeek {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDayOfWeek converts raw input into DayOfWeek.
func ParseDayOfWeek(value string) (DayOfWeek, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validDaysOfWeek {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid day of week %q", value)
}

// DayOfWeekFromTime converts a calendar date into its lowercase weekday name.
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	return DayOfWeek(strings.ToLower(t.Weekday().String()))
}
