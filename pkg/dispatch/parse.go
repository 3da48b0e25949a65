package dispatch

import (
	"strconv"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD calendar date. The boolean reports whether the
// value was usable; callers decide how an unusable value degrades.
func ParseDay(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(dayLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// ParseTimestamp parses an ISO-8601 timestamp, accepting a trailing Z as well
// as explicit offsets and bare date-time values.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		dayLayout,
	} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseWeight coerces the raw weight field to kilograms. Malformed or negative
// values degrade to 0.
func parseWeight(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	kg, err := strconv.ParseFloat(value, 64)
	if err != nil || kg < 0 {
		return 0
	}
	return kg
}

// daysBetween returns the whole calendar days from one day to another,
// negative when to precedes from.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// sameDay reports whether two times fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
