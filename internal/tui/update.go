package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayview/internal/dateutil"
	"github.com/javiermolinar/dayview/internal/layout"
	"github.com/javiermolinar/dayview/internal/tui/commands"
)

const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.focused {
			m.ensureSelectedVisible()
		} else if m.day != nil {
			m.focusDay()
		}
		return m, nil

	case commands.DayLoadedMsg:
		// A slow load for a date the user already left is stale.
		if !layout.SameDayUTC(msg.Day.Date, m.date) {
			return m, nil
		}
		m.loading = false
		m.setDay(msg.Day)
		if m.focused {
			m.ensureSelectedVisible()
		} else if m.height > 0 {
			m.focusDay()
		}
		m.logDay("loaded")
		return m, nil

	case commands.SavedMsg:
		verb := "Updated"
		if msg.Created {
			verb = "Created"
		}
		m.closeModal("saved")
		m.selectID = msg.Appointment.ID
		// Follow an appointment moved off the shown day.
		if !msg.Appointment.Touches(m.date) {
			m.date = dateutil.TruncateToDay(msg.Appointment.Start)
			m.focused = false
		}
		return m, tea.Batch(
			m.setStatus(fmt.Sprintf("%s: %s", verb, msg.Appointment.Title), statusTTL),
			m.reload(),
		)

	case commands.DeletedMsg:
		m.closeModal("deleted")
		return m, tea.Batch(
			m.setStatus(fmt.Sprintf("Deleted: %s", msg.Title), statusTTL),
			m.reload(),
		)

	case commands.ErrMsg:
		m.loading = false
		m.logError("command", msg.Err)
		if m.mode == ModeModal && m.modalType == ModalForm {
			m.form.err = msg.Err.Error()
			return m, nil
		}
		return m, m.setStatus(fmt.Sprintf("Error: %v", msg.Err), errorTTL)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg, statusTTL)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blinks and other input messages belong to the focused field.
	if m.mode == ModeModal && m.modalType == ModalForm {
		return m, m.form.update(msg)
	}
	return m, nil
}

// setStatus shows msg in the footer and schedules its removal after ttl.
func (m *Model) setStatus(msg string, ttl time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = m.now().Add(ttl)
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// reload fetches the shown date again.
func (m *Model) reload() tea.Cmd {
	m.loading = true
	return commands.LoadDay(m.store, m.date)
}

// showDate switches to another day and loads it.
func (m *Model) showDate(date time.Time) tea.Cmd {
	m.date = date
	m.focused = false
	m.selected = -1
	return m.reload()
}

func (m *Model) openModal(t ModalType, reason string) {
	prev := m.mode
	m.mode = ModeModal
	m.modalType = t
	m.logModeChange(prev, m.mode, reason)
}

func (m *Model) closeModal(reason string) {
	prev := m.mode
	if m.modalType == ModalForm {
		m.form.close()
	}
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.modalFrom = ModalNone
	m.logModeChange(prev, m.mode, reason)
}
