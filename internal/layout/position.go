package layout

import "time"

// HoursPerDay is the height of a full day, in hours.
const HoursPerDay = 24

// Position is a vertical placement on the day timeline, in the same unit as
// the units-per-hour scale it was computed with.
type Position struct {
	Top    float64
	Height float64
}

// Bottom returns Top + Height.
func (p Position) Bottom() float64 {
	return p.Top + p.Height
}

// Calculate maps [start, end) onto the UTC calendar day containing day.
//
// A start on an earlier day clamps to hour 0 and an end on a later day clamps
// to hour 24, so a span covering the whole day yields a full-height bar.
// end before start on the same day yields a negative height; callers validate
// ranges before laying them out.
func Calculate(start, end, day time.Time, unitsPerHour float64) Position {
	startHour := 0.0
	if SameDayUTC(start, day) {
		startHour = hourOfDay(start)
	}

	endHour := float64(HoursPerDay)
	if SameDayUTC(end, day) {
		endHour = hourOfDay(end)
	}

	return Position{
		Top:    startHour * unitsPerHour,
		Height: (endHour - startHour) * unitsPerHour,
	}
}

// SameDayUTC reports whether a and b fall on the same UTC calendar date.
func SameDayUTC(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// hourOfDay returns the UTC hour with minutes as a fraction. Seconds are ignored.
func hourOfDay(t time.Time) float64 {
	t = t.UTC()
	return float64(t.Hour()) + float64(t.Minute())/60
}
