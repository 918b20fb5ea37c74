package appointment

import (
	"slices"
	"time"

	"github.com/javiermolinar/dayview/internal/dateutil"
	"github.com/javiermolinar/dayview/internal/layout"
)

// Day holds every appointment touching one UTC calendar day.
type Day struct {
	Date         time.Time
	appointments []*Appointment // sorted by Start
}

// NewDay creates a Day for the UTC day containing date. Appointments that do
// not touch that day are dropped.
func NewDay(date time.Time, appointments []*Appointment) *Day {
	d := &Day{
		Date:         dateutil.TruncateToDay(date),
		appointments: make([]*Appointment, 0, len(appointments)),
	}
	for _, a := range appointments {
		d.Add(a)
	}
	return d
}

// Appointments returns a copy of the appointment slice.
func (d *Day) Appointments() []*Appointment {
	result := make([]*Appointment, len(d.appointments))
	copy(result, d.appointments)
	return result
}

// Add inserts a keeping start order. It reports false if a is nil or does
// not touch the day.
func (d *Day) Add(a *Appointment) bool {
	if a == nil || !a.Touches(d.Date) {
		return false
	}
	i, _ := slices.BinarySearchFunc(d.appointments, a, func(e, t *Appointment) int {
		if c := e.Start.Compare(t.Start); c != 0 {
			return c
		}
		// equal starts go after existing entries
		return -1
	})
	d.appointments = slices.Insert(d.appointments, i, a)
	return true
}

// Find returns the appointment with the given ID, or nil.
func (d *Day) Find(id int64) *Appointment {
	for _, a := range d.appointments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Remove removes an appointment by ID.
// Returns the removed appointment, or nil if not found.
func (d *Day) Remove(id int64) *Appointment {
	for i, a := range d.appointments {
		if a.ID == id {
			d.appointments = slices.Delete(d.appointments, i, i+1)
			return a
		}
	}
	return nil
}

// Len returns the number of appointments in the day.
func (d *Day) Len() int {
	return len(d.appointments)
}

// Clusters groups the day's appointments by overlap.
func (d *Day) Clusters() []layout.Cluster[*Appointment] {
	return layout.Group(d.appointments)
}

// Blocks positions each cluster on the day at unitsPerHour.
func (d *Day) Blocks(unitsPerHour float64) []layout.Block[*Appointment] {
	return layout.Arrange(d.appointments, d.Date, unitsPerHour)
}

// DayStats holds statistics for a single day.
type DayStats struct {
	Appointments  int
	BookedMinutes int // each appointment clipped to the day, overlaps counted per appointment
	OverlapGroups int // clusters holding more than one appointment
}

// BookedHours returns BookedMinutes as fractional hours.
func (s DayStats) BookedHours() float64 {
	return float64(s.BookedMinutes) / 60
}

// Stats calculates statistics for the day.
func (d *Day) Stats() DayStats {
	stats := DayStats{Appointments: len(d.appointments)}
	for _, a := range d.appointments {
		minutes := layout.Calculate(a.Start, a.End, d.Date, 60).Height
		if minutes > 0 {
			stats.BookedMinutes += int(minutes + 0.5)
		}
	}
	for _, c := range d.Clusters() {
		if len(c) > 1 {
			stats.OverlapGroups++
		}
	}
	return stats
}
