package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/dateutil"
	"github.com/javiermolinar/dayview/internal/layout"
	"github.com/javiermolinar/dayview/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModeModal {
		switch m.modalType {
		case ModalDetail:
			return m.handleDetailKeys(msg)
		case ModalForm:
			return m.handleFormKeys(msg)
		case ModalConfirmDelete:
			return m.handleConfirmDeleteKeys(msg)
		}
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys on the timeline.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day navigation
	case "h", "left":
		return m, m.showDate(m.date.AddDate(0, 0, -1))
	case "l", "right":
		return m, m.showDate(m.date.AddDate(0, 0, 1))
	case "t":
		return m, m.showDate(dateutil.TruncateToDay(m.now()))

	// Block selection
	case "j", "down":
		if m.selected < len(m.blocks)-1 {
			m.selected++
		}
		m.ensureSelectedVisible()
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		} else if m.selected < 0 && len(m.blocks) > 0 {
			m.selected = 0
		}
		m.ensureSelectedVisible()
	case "g", "home":
		if len(m.blocks) > 0 {
			m.selected = 0
			m.ensureSelectedVisible()
		}
	case "G", "end":
		if len(m.blocks) > 0 {
			m.selected = len(m.blocks) - 1
			m.ensureSelectedVisible()
		}

	// Scrolling leaves the selection alone.
	case "pgdown", "ctrl+d":
		m.scrollTo(m.scrollOffset + max(m.timelineHeight()/2, 1))
	case "pgup", "ctrl+u":
		m.scrollTo(m.scrollOffset - max(m.timelineHeight()/2, 1))

	// Actions
	case "enter":
		if _, ok := m.selectedBlock(); ok {
			m.openModal(ModalDetail, "enter")
		}
	case "n":
		return m, m.openForm(nil)
	case "e":
		if b, ok := m.selectedBlock(); ok {
			return m, m.openForm(b.Primary)
		}
	case "d", "delete":
		if _, ok := m.selectedBlock(); ok {
			m.modalFrom = ModalNone
			m.openModal(ModalConfirmDelete, "delete")
		}
	case "y":
		return m, m.copyAgenda()
	case "r":
		return m, m.reload()
	}

	return m, nil
}

// handleDetailKeys handles keys in the appointment detail modal.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, ok := m.selectedBlock()
	if !ok {
		m.closeModal("selection gone")
		return m, nil
	}

	switch msg.String() {
	case "esc", "enter", "q":
		m.closeModal("close detail")
	case "e":
		m.closeModal("edit")
		return m, m.openForm(b.Primary)
	case "d":
		m.modalFrom = ModalDetail
		m.modalType = ModalConfirmDelete
		m.logModeChange(ModeModal, ModeModal, "delete")
	case "y":
		return m, m.copyText(agendaLine(b.Primary), "Copied appointment")
	}
	return m, nil
}

// handleFormKeys handles keys while the new/edit form is open. Everything
// not bound here is typed into the focused field.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal("cancel form")
		return m, nil
	case "tab", "down":
		return m, m.form.focusField(m.form.focus + 1)
	case "shift+tab", "up":
		return m, m.form.focusField(m.form.focus - 1)
	case "enter":
		return m, m.submitForm()
	}
	return m, m.form.update(msg)
}

// handleConfirmDeleteKeys handles keys in the delete confirmation modal.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		b, ok := m.selectedBlock()
		if !ok {
			m.closeModal("selection gone")
			return m, nil
		}
		return m, commands.Delete(m.store, b.Primary)
	case "n", "N", "esc":
		if m.modalFrom == ModalDetail {
			m.modalType = ModalDetail
			m.modalFrom = ModalNone
			return m, nil
		}
		m.closeModal("cancel delete")
	}
	return m, nil
}

// openForm opens the form to edit a, or to create an appointment in the
// first free default slot when a is nil.
func (m *Model) openForm(a *appointment.Appointment) tea.Cmd {
	var slot layout.Span
	if a == nil {
		var busy []layout.Interval
		if m.day != nil {
			for _, appt := range m.day.Appointments() {
				busy = append(busy, appt)
			}
		}
		slot = m.sched.NextFree(m.date, busy)
	}
	m.openModal(ModalForm, "form")
	return m.form.open(m.date, slot, a)
}

// submitForm validates the form and saves it.
func (m *Model) submitForm() tea.Cmd {
	m.form.err = ""
	if m.form.editing == nil {
		in, err := m.form.input(m.date)
		if err != nil {
			m.form.err = err.Error()
			return nil
		}
		if _, err := appointment.New(in); err != nil {
			m.form.err = err.Error()
			return nil
		}
		return commands.Create(m.store, in)
	}

	p, err := m.form.patch(m.date)
	if err != nil {
		m.form.err = err.Error()
		return nil
	}
	if p.IsEmpty() {
		m.closeModal("nothing changed")
		return nil
	}
	return commands.Update(m.store, m.form.editing.ID, p)
}

// copyAgenda writes the shown day's agenda to the clipboard.
func (m *Model) copyAgenda() tea.Cmd {
	if m.day == nil {
		return nil
	}
	return m.copyText(agendaText(m.day, m.now()), fmt.Sprintf("Copied %d appointments", m.day.Len()))
}

func (m *Model) copyText(text, status string) tea.Cmd {
	if err := m.clip(text); err != nil {
		m.logError("clipboard", err)
		return m.setStatus(fmt.Sprintf("Error: copying to clipboard: %v", err), errorTTL)
	}
	return m.setStatus(status, statusTTL)
}
