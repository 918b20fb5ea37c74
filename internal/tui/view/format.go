package view

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration formats minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatRange renders "HH:MM - HH:MM" in UTC. An end on a later day than the
// start gets a "+N" day suffix.
func FormatRange(start, end time.Time) string {
	start, end = start.UTC(), end.UTC()
	s := start.Format("15:04") + " - " + end.Format("15:04")
	days := int(truncate(end).Sub(truncate(start)).Hours() / 24)
	if days > 0 {
		s += fmt.Sprintf(" +%d", days)
	}
	return s
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
