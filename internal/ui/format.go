package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/dayview/internal/appointment"
)

// cellsPerHour is the bar scale of the text timeline.
const cellsPerHour = 4

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// formatRange renders "HH:MM-HH:MM" in UTC. Ends falling on a later day are
// marked with a trailing "+".
func formatRange(a *appointment.Appointment) string {
	start := a.Start.UTC()
	end := a.End.UTC()
	s := start.Format("15:04") + "-" + end.Format("15:04")
	if end.YearDay() != start.YearDay() || end.Year() != start.Year() {
		s += "+"
	}
	return s
}

// describeEmployee renders "Name <email>", or "-" when unassigned.
func describeEmployee(e *appointment.Employee) string {
	if e == nil {
		return "-"
	}
	return fmt.Sprintf("%s <%s>", e.Name, e.Email)
}

// printAppointmentRow prints one appointment on a single line.
func printAppointmentRow(w io.Writer, a *appointment.Appointment, maxTitle int) {
	title := ansi.Truncate(a.Title, maxTitle, "…")
	extra := ""
	if n := len(a.Participants); n > 0 {
		extra = styledMuted(fmt.Sprintf(" +%d participants", n))
	}
	_, _ = fmt.Fprintf(w, "  #%-4d %s  %-*s  %s%s\n",
		a.ID,
		styledRange(formatRange(a)),
		maxTitle, title,
		styledMuted(describeEmployee(a.Employee)),
		extra,
	)
}

// printDay renders the day as a timeline: one row per overlap group, with a
// bar offset and sized by the group's position on the day.
func printDay(w io.Writer, day *appointment.Day, width int) {
	_, _ = fmt.Fprintf(w, "=== %s ===\n\n", styledHeading(day.Date.Format("Monday, January 2, 2006")))

	blocks := day.Blocks(cellsPerHour)
	if len(blocks) == 0 {
		_, _ = fmt.Fprintln(w, "No appointments scheduled.")
		return
	}

	// "  HH:MM-HH:MM+  " prefix leaves the rest of the line for bar and title
	barWidth := 24 * cellsPerHour
	titleWidth := max(width-barWidth-18, 12)

	_, _ = fmt.Fprintf(w, "  %-12s  %s\n", "", styledMuted(hourRuler()))
	for _, b := range blocks {
		offset := min(int(math.Round(b.Top)), barWidth-1)
		length := max(int(math.Round(b.Height)), 1)
		if offset+length > barWidth {
			length = barWidth - offset
		}
		bar := strings.Repeat(" ", offset) + strings.Repeat("█", length) + strings.Repeat(" ", barWidth-offset-length)

		label := ansi.Truncate(b.Primary.Title, titleWidth, "…")
		if n := b.OverlapCount(); n > 0 {
			label += " " + styledBadge(fmt.Sprintf("(+%d)", n))
		}
		rng := styledRange(fmt.Sprintf("%-12s", formatRange(b.Primary)))
		_, _ = fmt.Fprintf(w, "  %s  %s %s\n", rng, styledTitle(bar), label)
	}

	_, _ = fmt.Fprintln(w)
	printDayStats(w, day.Stats())
}

// hourRuler labels every third hour across the timeline.
func hourRuler() string {
	var sb strings.Builder
	for h := 0; h < 24; h += 3 {
		label := fmt.Sprintf("%02d", h)
		sb.WriteString(label)
		sb.WriteString(strings.Repeat(" ", 3*cellsPerHour-len(label)))
	}
	return sb.String()
}

// printDayStats prints the stats summary line.
func printDayStats(w io.Writer, stats appointment.DayStats) {
	_, _ = fmt.Fprintf(w, "Appointments: %d | Booked: %s | Overlap groups: %s\n",
		stats.Appointments,
		styledTotal(FormatDuration(stats.BookedMinutes)),
		styledBadge(fmt.Sprintf("%d", stats.OverlapGroups)),
	)
}

// printAppointmentDetail prints every field of one appointment.
func printAppointmentDetail(w io.Writer, a *appointment.Appointment) {
	_, _ = fmt.Fprintf(w, "%s %s\n", styledHeading(fmt.Sprintf("#%d", a.ID)), styledTitle(a.Title))
	_, _ = fmt.Fprintf(w, "  When:         %s - %s\n",
		a.Start.UTC().Format(time.DateTime), a.End.UTC().Format(time.DateTime))
	_, _ = fmt.Fprintf(w, "  Duration:     %s\n", FormatDuration(int(a.Duration().Minutes())))
	_, _ = fmt.Fprintf(w, "  Employee:     %s\n", describeEmployee(a.Employee))
	if len(a.Participants) > 0 {
		names := make([]string, 0, len(a.Participants))
		for _, p := range a.Participants {
			names = append(names, describeEmployee(p))
		}
		_, _ = fmt.Fprintf(w, "  Participants: %s\n", strings.Join(names, ", "))
	}
	if a.Description != "" {
		_, _ = fmt.Fprintf(w, "  Description:  %s\n", a.Description)
	}
}
