package tracker

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the input formats accepted before falling back. The output
// layout is included so a date copied from a previous response round-trips.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ValidateUsername checks that a username is present and non-empty
func ValidateUsername(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", NewMissingFieldError("username")
	}
	return input, nil
}

// CoerceDuration converts a loosely-typed duration (JSON number or numeric
// string) into minutes. Absent or empty input is a missing field; input that
// is present but not a finite number is an invalid number.
func CoerceDuration(input any) (int, error) {
	switch v := input.(type) {
	case nil:
		return 0, NewMissingFieldError("duration")
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, NewMissingFieldError("duration")
		}
		return parseDurationValue(v)
	case json.Number:
		return parseDurationValue(v.String())
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, NewInvalidNumberError("duration")
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, NewInvalidNumberError("duration")
	}
}

func parseDurationValue(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NewInvalidNumberError("duration")
	}
	return int(f), nil
}

// CoerceDate resolves a raw date string to an instant. Absent or unparsable
// input yields now: a bad date never fails a request.
func CoerceDate(input string, now time.Time) time.Time {
	if t, ok := ParseInstant(input); ok {
		return t
	}
	return now
}

// ParseInstant attempts to parse a raw date string against the accepted
// layouts. Date-only layouts resolve at midnight UTC.
func ParseInstant(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseLimit parses an optional result limit. Absent, unparsable, or negative
// input means no limit; zero is a valid limit.
func ParseLimit(input string) (int, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
