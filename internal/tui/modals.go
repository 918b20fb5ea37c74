package tui

import (
	"strings"

	"github.com/javiermolinar/dayview/internal/tui/view"
)

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalDetail:
		return m.renderDetailModal()
	case ModalForm:
		return m.renderFormModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		Frame:        m.styles.ModalStyle,
		Header:       m.styles.ModalHeaderStyle,
		Title:        m.styles.ModalTitleStyle,
		Body:         m.styles.ModalBodyStyle,
		Footer:       m.styles.ModalFooterStyle,
		Button:       m.styles.ModalButtonStyle,
		ButtonActive: m.styles.ModalButtonActiveStyle,
		ButtonDanger: m.styles.ModalButtonDangerStyle,
	}
}

// renderDetailModal shows the selected block's primary appointment and
// lists the appointments it hides.
func (m Model) renderDetailModal() string {
	b, ok := m.selectedBlock()
	if !ok {
		return ""
	}
	a := b.Primary

	label, _ := view.DayLabel(m.date, m.now())
	model := view.AppointmentDetailModel{
		Title:       a.Title,
		TimeRange:   view.FormatRange(a.Start, a.End),
		DateLabel:   label,
		Duration:    view.FormatDuration(int(a.Duration().Minutes())),
		Owner:       "Unassigned",
		Description: a.Description,
	}
	if a.Employee != nil {
		model.Owner = a.Employee.String()
	}
	for _, p := range a.Participants {
		model.Participants = append(model.Participants, p.Name)
	}
	for _, o := range b.Overlapped {
		model.Overlapped = append(model.Overlapped, view.FormatRange(o.Start, o.End)+" "+o.Title)
	}

	body := view.RenderAppointmentDetailBody(model, view.DetailStyles{
		BodyStyle:         m.styles.ModalBodyStyle,
		LabelStyle:        m.styles.ModalLabelStyle,
		MetaStyle:         m.styles.ModalMetaStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
	})
	footer := view.DetailFooter(m.modalStyles())
	return view.Frame{Title: "Appointment", Body: body, Footer: footer}.Render(m.modalStyles())
}

// renderFormModal renders the new/edit form.
func (m Model) renderFormModal() string {
	title := "New Appointment"
	if m.form.editing != nil {
		title = "Edit Appointment"
	}

	label, _ := view.DayLabel(m.date, m.now())
	model := view.AppointmentFormModel{
		DateLabel: label,
		Error:     m.form.err,
	}
	if start, err := parseFormTime(m.date, m.form.value(fieldStart)); err == nil {
		if end, err := parseFormTime(m.date, m.form.value(fieldEnd)); err == nil && end.After(start) {
			model.Duration = view.FormatDuration(int(end.Sub(start).Minutes()))
		}
	}
	for i, input := range m.form.inputs {
		model.Fields = append(model.Fields, view.FormField{
			Label:   fieldLabels[i],
			Value:   input.View(),
			Focused: i == m.form.focus,
		})
	}

	body := view.RenderAppointmentFormBody(model, view.FormStyles{
		TagStyle:          m.styles.ModalTagStyle,
		BodyStyle:         m.styles.ModalBodyStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
		InputStyle:        m.styles.ModalInputStyle,
		InputFocusedStyle: m.styles.ModalInputFocusedStyle,
		ErrorStyle:        m.styles.ModalErrorStyle,
		HintStyle:         m.styles.ModalHintStyle,
	})
	footer := view.FormFooter(m.modalStyles())
	return view.Frame{Title: title, Body: body, Footer: footer}.Render(m.modalStyles())
}

// renderConfirmDeleteModal renders the delete confirmation modal.
func (m Model) renderConfirmDeleteModal() string {
	b, ok := m.selectedBlock()
	if !ok {
		return ""
	}
	a := b.Primary
	label, _ := view.DayLabel(m.date, m.now())
	body := view.RenderConfirmDeleteBody(view.ConfirmDeleteModel{
		Title:     strings.TrimSpace(a.Title),
		TimeRange: view.FormatRange(a.Start, a.End),
		DateLabel: label,
	}, view.ConfirmDeleteStyles{BodyStyle: m.styles.ModalBodyStyle})
	footer := view.ConfirmDeleteFooter(m.modalStyles())
	return view.Frame{Title: "Delete Appointment", Body: body, Footer: footer}.Render(m.modalStyles())
}
