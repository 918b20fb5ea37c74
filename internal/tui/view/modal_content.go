package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AppointmentDetailModel contains the fields needed to render the
// appointment detail body.
type AppointmentDetailModel struct {
	Title        string
	TimeRange    string
	DateLabel    string
	Duration     string
	Owner        string
	Participants []string
	Description  string
	Overlapped   []string // "HH:MM - HH:MM Title" lines hidden behind the block
}

// DetailStyles groups styles for the detail body.
type DetailStyles struct {
	BodyStyle         lipgloss.Style
	LabelStyle        lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
}

// RenderAppointmentDetailBody renders the modal body for an appointment.
func RenderAppointmentDetailBody(model AppointmentDetailModel, styles DetailStyles) string {
	var body strings.Builder

	body.WriteString(" " + styles.BodyStyle.Render(model.Title) + "\n\n")
	body.WriteString(styles.LabelStyle.Render(" When:") + styles.BodyStyle.Render(fmt.Sprintf("%s (%s)", model.TimeRange, model.Duration)) + "\n")
	body.WriteString(styles.LabelStyle.Render(" Day:") + styles.BodyStyle.Render(model.DateLabel) + "\n")
	body.WriteString(styles.LabelStyle.Render(" Owner:") + styles.BodyStyle.Render(model.Owner) + "\n")
	if len(model.Participants) > 0 {
		body.WriteString(styles.LabelStyle.Render(" With:") + styles.BodyStyle.Render(strings.Join(model.Participants, ", ")) + "\n")
	}
	if model.Description != "" {
		body.WriteString("\n" + styles.MetaStyle.Render(" "+model.Description) + "\n")
	}

	if len(model.Overlapped) > 0 {
		body.WriteString("\n" + styles.SectionTitleStyle.Render(fmt.Sprintf("OVERLAPPING (%d)", len(model.Overlapped))) + "\n")
		for _, line := range model.Overlapped {
			body.WriteString(styles.BodyStyle.Render(" • "+line) + "\n")
		}
	}

	return strings.TrimRight(body.String(), "\n")
}

// ConfirmDeleteModel contains the fields needed to render the confirm delete body.
type ConfirmDeleteModel struct {
	Title     string
	TimeRange string
	DateLabel string
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	body.WriteString(styles.BodyStyle.Render(fmt.Sprintf("%q", model.Title)) + "\n")
	body.WriteString(styles.BodyStyle.Render(model.TimeRange) + "\n")
	body.WriteString(styles.BodyStyle.Render(model.DateLabel) + "\n\n")
	body.WriteString(styles.BodyStyle.Render("This appointment will be deleted.\nAre you sure?"))

	return body.String()
}
