// Package layout places time ranges on a single-day timeline.
//
// Two pure steps compose a render-ready layout: Group clusters overlapping
// intervals, and Calculate maps one interval, clipped to a UTC calendar day,
// to a vertical offset and height. Arrange runs both.
package layout

import "time"

// Interval is a half-open time range [start, end).
type Interval interface {
	StartTime() time.Time
	EndTime() time.Time
}

// Span is a plain Interval value.
type Span struct {
	Start time.Time
	End   time.Time
}

// StartTime returns the beginning of the span.
func (s Span) StartTime() time.Time { return s.Start }

// EndTime returns the (exclusive) end of the span.
func (s Span) EndTime() time.Time { return s.End }

// Overlaps reports whether a and b intersect.
// Touching endpoints (a ends exactly when b starts) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.StartTime().Before(b.EndTime()) && b.StartTime().Before(a.EndTime())
}
