package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/tui/view"
)

// agendaText renders a plain text agenda of day for the clipboard.
func agendaText(day *appointment.Day, now time.Time) string {
	label, _ := view.DayLabel(day.Date, now)

	var b strings.Builder
	b.WriteString(label + "\n\n")
	appts := day.Appointments()
	if len(appts) == 0 {
		b.WriteString("No appointments\n")
	}
	for _, a := range appts {
		b.WriteString(agendaLine(a) + "\n")
	}
	b.WriteString("\n" + statsText(day.Stats()))
	return b.String()
}

// agendaLine renders "HH:MM - HH:MM  Title", with the owner when known.
func agendaLine(a *appointment.Appointment) string {
	line := view.FormatRange(a.Start, a.End) + "  " + a.Title
	if a.Employee != nil && a.Employee.Name != "" {
		line += " (" + a.Employee.Name + ")"
	}
	return line
}

func statsText(s appointment.DayStats) string {
	return fmt.Sprintf("Appointments: %d | Booked: %s | Overlap groups: %d",
		s.Appointments, view.FormatDuration(s.BookedMinutes), s.OverlapGroups)
}
