package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseError reports a clock string the upstream timing API returned that
// does not parse as a 24-hour "HH:MM" time.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid clock time %q", e.Raw)
}

// ParseClock builds an instant on day's calendar date at the given
// "HH:MM" clock time, zero seconds, in day's location. The API sometimes
// appends a timezone suffix like " (AST)", which is stripped.
func ParseClock(raw string, day time.Time) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return time.Time{}, &ParseError{Raw: raw}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, &ParseError{Raw: raw}
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return time.Time{}, &ParseError{Raw: raw}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location()), nil
}

// FormatClock renders an instant back to a zero-padded 24-hour "HH:MM"
// string. FormatClock(ParseClock(s)) == s for any valid s.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatCountdown renders a duration as zero-padded "HH:MM:SS" with
// unbounded hours. Negative durations render as "00:00:00".
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
