package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormField is one labelled input of the appointment form. Value is the
// already rendered text input.
type FormField struct {
	Label   string
	Value   string
	Focused bool
}

// AppointmentFormModel contains the fields needed to render the form body.
type AppointmentFormModel struct {
	DateLabel string
	Duration  string
	Fields    []FormField
	Error     string
}

// FormStyles groups styles for the appointment form body.
type FormStyles struct {
	TagStyle          lipgloss.Style
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderAppointmentFormBody renders the modal body for the appointment form.
func RenderAppointmentFormBody(model AppointmentFormModel, styles FormStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	body.WriteString(styles.TagStyle.Render(model.DateLabel))
	if model.Duration != "" {
		body.WriteString(sep + styles.TagStyle.Render(model.Duration))
	}
	body.WriteString("\n\n")

	for _, f := range model.Fields {
		body.WriteString(styles.SectionTitleStyle.Render(strings.ToUpper(f.Label)) + "\n")
		style := styles.InputStyle
		if f.Focused {
			style = styles.InputFocusedStyle
		}
		body.WriteString(style.Render(f.Value) + "\n")
	}

	if model.Error != "" {
		body.WriteString(styles.ErrorStyle.Render(" "+model.Error) + "\n")
	} else {
		body.WriteString(styles.HintStyle.Render(" Times are HH:MM in UTC; tab moves between fields") + "\n")
	}

	return body.String()
}
