// Package scheduler picks default time slots for new appointments.
package scheduler

import (
	"fmt"
	"slices"
	"time"

	"github.com/javiermolinar/dayview/internal/dateutil"
	"github.com/javiermolinar/dayview/internal/layout"
)

// step is the granularity free slots are aligned to.
const step = 15 * time.Minute

// Scheduler provides slot suggestions for a UTC day.
type Scheduler struct {
	dayStart string // "HH:MM"
	duration time.Duration
}

// New creates a Scheduler whose default slot starts at dayStart and lasts
// duration.
func New(dayStart string, duration time.Duration) (*Scheduler, error) {
	if _, err := dateutil.AtClock(time.Time{}, dayStart); err != nil {
		return nil, fmt.Errorf("default start: %w", err)
	}
	if duration <= 0 || duration > 24*time.Hour {
		return nil, fmt.Errorf("default duration must be between 0 and 24h, got %s", duration)
	}
	return &Scheduler{dayStart: dayStart, duration: duration}, nil
}

// Slot is a proposed [Start, End) range.
type Slot = layout.Span

// DayStart returns the configured default start.
func (s *Scheduler) DayStart() string {
	return s.dayStart
}

// Duration returns the configured default duration.
func (s *Scheduler) Duration() time.Duration {
	return s.duration
}

// Slot returns the default slot on the UTC day containing day.
func (s *Scheduler) Slot(day time.Time) Slot {
	start, _ := dateutil.AtClock(day, s.dayStart)
	return Slot{Start: start, End: start.Add(s.duration)}
}

// NextFree returns the first default-length slot at or after the default
// start that overlaps none of busy and still ends within the day. Starts
// pushed past an appointment are rounded up to the next quarter hour. When
// nothing fits the default slot is returned.
func (s *Scheduler) NextFree(day time.Time, busy []layout.Interval) Slot {
	_, dayEnd := dateutil.DayBounds(day)
	dayEnd = dayEnd.Add(time.Microsecond)

	sorted := slices.Clone(busy)
	slices.SortStableFunc(sorted, func(a, b layout.Interval) int {
		return a.StartTime().Compare(b.StartTime())
	})

	candidate := s.Slot(day)
	for _, b := range sorted {
		if !b.EndTime().After(candidate.Start) {
			continue
		}
		if !b.StartTime().Before(candidate.End) {
			break
		}
		start := roundUp(b.EndTime())
		candidate = Slot{Start: start, End: start.Add(s.duration)}
	}

	if candidate.End.After(dayEnd) {
		return s.Slot(day)
	}
	return candidate
}

// roundUp rounds t up to the next quarter-hour boundary.
func roundUp(t time.Time) time.Time {
	r := t.Truncate(step)
	if r.Equal(t) {
		return t
	}
	return r.Add(step)
}
