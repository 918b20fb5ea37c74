// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayview/internal/appointment"
)

// DayLoadedMsg is sent when a day's appointments are loaded.
type DayLoadedMsg struct {
	Day *appointment.Day
}

// SavedMsg is sent after an appointment is created or updated.
type SavedMsg struct {
	Appointment *appointment.Appointment
	Created     bool
}

// DeletedMsg is sent after an appointment is deleted.
type DeletedMsg struct {
	ID    int64
	Title string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadDay loads every appointment touching the UTC day containing date.
func LoadDay(store appointment.AppointmentRepository, date time.Time) tea.Cmd {
	return func() tea.Msg {
		appts, err := store.ListAppointments(context.Background(), appointment.AppointmentFilter{Date: &date})
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading day: %w", err)}
		}
		return DayLoadedMsg{Day: appointment.NewDay(date, appts)}
	}
}

// Create stores a new appointment built from in.
func Create(store appointment.AppointmentRepository, in appointment.Input) tea.Cmd {
	return func() tea.Msg {
		a, err := appointment.New(in)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := store.CreateAppointment(context.Background(), a); err != nil {
			return ErrMsg{Err: fmt.Errorf("creating appointment: %w", err)}
		}
		return SavedMsg{Appointment: a, Created: true}
	}
}

// Update applies patch to the stored appointment id.
func Update(store appointment.AppointmentRepository, id int64, patch appointment.Patch) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		a, err := store.GetAppointment(ctx, id)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := patch.Apply(a); err != nil {
			return ErrMsg{Err: err}
		}
		if err := store.UpdateAppointment(ctx, a); err != nil {
			return ErrMsg{Err: fmt.Errorf("updating appointment: %w", err)}
		}
		return SavedMsg{Appointment: a}
	}
}

// Delete removes the appointment a.
func Delete(store appointment.AppointmentRepository, a *appointment.Appointment) tea.Cmd {
	id, title := a.ID, a.Title
	return func() tea.Msg {
		if err := store.DeleteAppointment(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting appointment: %w", err)}
		}
		return DeletedMsg{ID: id, Title: title}
	}
}
