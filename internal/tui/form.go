package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/dateutil"
	"github.com/javiermolinar/dayview/internal/layout"
)

// Form fields, in tab order.
const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Start", "End", "Description"}

// appointmentForm holds the inputs of the new/edit popup.
type appointmentForm struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	editing *appointment.Appointment // nil when creating
	err     string
}

func newAppointmentForm(styles *Styles) appointmentForm {
	var f appointmentForm
	placeholders := [fieldCount]string{"Appointment title", "HH:MM", "HH:MM", "Optional"}
	limits := [fieldCount]int{appointment.MaxTitleLength, 16, 16, 512}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 44
		ti.Prompt = ""
		ti.PlaceholderStyle = styles.ModalPlaceholderStyle
		ti.TextStyle = styles.ModalInputTextStyle
		ti.PromptStyle = styles.ModalInputTextStyle
		ti.Cursor.Style = styles.ModalInputCursorStyle
		ti.Cursor.TextStyle = styles.ModalInputTextStyle
		f.inputs[i] = ti
	}
	return f
}

// open fills the form for a new appointment in slot, or for editing a.
func (f *appointmentForm) open(day time.Time, slot layout.Span, a *appointment.Appointment) tea.Cmd {
	f.editing = a
	f.err = ""
	if a != nil {
		f.inputs[fieldTitle].SetValue(a.Title)
		f.inputs[fieldStart].SetValue(formatClock(a.Start, day))
		f.inputs[fieldEnd].SetValue(formatClock(a.End, day))
		f.inputs[fieldDescription].SetValue(a.Description)
	} else {
		f.inputs[fieldTitle].SetValue("")
		f.inputs[fieldStart].SetValue(formatClock(slot.Start, day))
		f.inputs[fieldEnd].SetValue(formatClock(slot.End, day))
		f.inputs[fieldDescription].SetValue("")
	}
	return f.focusField(fieldTitle)
}

func (f *appointmentForm) close() {
	for i := range f.inputs {
		f.inputs[i].Blur()
		f.inputs[i].SetValue("")
	}
	f.editing = nil
	f.err = ""
	f.focus = fieldTitle
}

func (f *appointmentForm) focusField(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
			f.inputs[j].CursorEnd()
		} else {
			f.inputs[j].Blur()
		}
	}
	return textinput.Blink
}

func (f *appointmentForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f appointmentForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// input parses the form into a full write on day. Clock values are read on
// day; anything longer is parsed as a full datetime.
func (f appointmentForm) input(day time.Time) (appointment.Input, error) {
	in := appointment.Input{
		Title:       f.value(fieldTitle),
		Description: f.value(fieldDescription),
	}
	var err error
	if in.Start, err = parseFormTime(day, f.value(fieldStart)); err != nil {
		return in, fmt.Errorf("start: %w", err)
	}
	if in.End, err = parseFormTime(day, f.value(fieldEnd)); err != nil {
		return in, fmt.Errorf("end: %w", err)
	}
	if f.editing != nil {
		in.EmployeeID = f.editing.EmployeeID()
		in.ParticipantIDs = f.editing.ParticipantIDs()
	}
	return in, nil
}

// patch returns the changes made to the appointment being edited.
func (f appointmentForm) patch(day time.Time) (appointment.Patch, error) {
	in, err := f.input(day)
	if err != nil {
		return appointment.Patch{}, err
	}

	var p appointment.Patch
	a := f.editing
	if in.Title != a.Title {
		p.Title = &in.Title
	}
	if in.Description != a.Description {
		p.Description = &in.Description
	}
	if !in.Start.Equal(a.Start) {
		p.Start = &in.Start
	}
	if !in.End.Equal(a.End) {
		p.End = &in.End
	}
	return p, nil
}

func parseFormTime(day time.Time, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("required")
	}
	if len(s) == 5 {
		return dateutil.AtClock(day, s)
	}
	return dateutil.ParseDateTime(s)
}

// formatClock renders t as "HH:MM" when it falls on day, and as a full
// "YYYY-MM-DD HH:MM" otherwise.
func formatClock(t, day time.Time) string {
	if layout.SameDayUTC(t, day) {
		return t.UTC().Format("15:04")
	}
	return t.UTC().Format("2006-01-02 15:04")
}
