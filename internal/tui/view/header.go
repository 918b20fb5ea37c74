package view

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HeaderModel holds the content of the day header line.
type HeaderModel struct {
	Width      int
	Date       time.Time
	Today      time.Time
	Title      string
	TitleStyle lipgloss.Style
	DateStyle  lipgloss.Style
	TodayStyle lipgloss.Style
	Bg         lipgloss.Color
}

// DayLabel renders "Monday, January 2, 2006", starred when date is today.
func DayLabel(date, today time.Time) (string, bool) {
	label := date.Format("Monday, January 2, 2006")
	if sameDay(date, today) {
		return "*" + label + "*", true
	}
	return label, false
}

// RenderHeader renders the title on the left and the day label on the right.
func RenderHeader(model HeaderModel) string {
	if model.Width <= 0 {
		return ""
	}
	label, isToday := DayLabel(model.Date, model.Today)
	dateStyle := model.DateStyle
	if isToday {
		dateStyle = model.TodayStyle
	}

	left := model.TitleStyle.Render(model.Title)
	right := dateStyle.Render(label)
	gap := model.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, model.Width, "")
	}
	fill := lipgloss.NewStyle().Background(model.Bg).Render(spaces(gap))
	return left + fill + right
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.UTC().Date()
	yb, mb, db := b.UTC().Date()
	return ya == yb && ma == mb && da == db
}
