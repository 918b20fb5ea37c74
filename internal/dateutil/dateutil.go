// Package dateutil provides date parsing and UTC calendar-day helpers.
//
// Every calendar day in dayview is a UTC day: appointments are stored as
// absolute instants and clipped against midnight-to-midnight UTC windows.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTimeFormat     = errors.New("time must be in HH:MM format")
	ErrInvalidDateTimeFormat = errors.New("datetime must be RFC 3339 or YYYY-MM-DDTHH:MM")
	ErrEndDateBeforeStart    = errors.New("end date must be on or after start date")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange represents a validated range of UTC days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a new DateRange with validation.
// startDate can be empty (defaults to today) or in YYYY-MM-DD format.
// endDate can be empty (defaults to startDate) or in YYYY-MM-DD format.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}

	return &DateRange{Start: start, End: end}, nil
}

// Until returns the instant right after the last day of the range.
func (r *DateRange) Until() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// ParseDate parses a date string in YYYY-MM-DD format as a UTC day.
// If the string is empty, returns today's UTC date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return Today(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// Today returns midnight UTC of the current UTC day.
func Today() time.Time {
	return TruncateToDay(time.Now())
}

// TruncateToDay returns midnight UTC of the UTC day containing t.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the first and last representable instant of the UTC day
// containing t, at microsecond precision.
func DayBounds(t time.Time) (start, end time.Time) {
	start = TruncateToDay(t)
	end = start.Add(24*time.Hour - time.Microsecond)
	return start, end
}

// AtClock returns day's UTC date at the given "HH:MM" clock time.
func AtClock(day time.Time, clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	if len(clock) != 5 {
		return time.Time{}, ErrInvalidTimeFormat
	}
	c, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	d := TruncateToDay(day)
	return d.Add(time.Duration(c.Hour())*time.Hour + time.Duration(c.Minute())*time.Minute), nil
}

// dateTimeLayouts are tried in order by ParseDateTime. Layouts without an
// offset are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDateTime parses an absolute instant. It accepts RFC 3339 and the
// offset-less forms produced by datetime-local inputs, which are read as UTC.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateTimeFormat
}

// ParseRelativeDate parses a day expression relative to relativeTo:
//   - Empty string or "today": the day of relativeTo
//   - Keywords: "tomorrow", "yesterday", "next-week", "last-week"
//   - Weekday names: "monday" through "sunday" (next occurrence)
//   - Next prefixed: "next-monday" through "next-sunday"
//   - Absolute date: "2025-01-15" (YYYY-MM-DD), past dates included
//
// All inputs are case-insensitive and all results are UTC midnights.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	case "last-week":
		return today.AddDate(0, 0, -7), nil
	}

	if strings.HasPrefix(input, "next-") {
		weekdayName := strings.TrimPrefix(input, "next-")
		if targetDay, ok := weekdayMap[weekdayName]; ok {
			return nextWeekday(today, targetDay), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(today, targetDay), nil
	}

	result, err := time.Parse(time.DateOnly, input)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	current := today.Weekday()
	daysUntil := int(target) - int(current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
