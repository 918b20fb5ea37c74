package tui

import (
	"github.com/javiermolinar/dayview/internal/tui/view"
)

const (
	appTitle = "dayview"

	helpNormal = "h/l day  t today  j/k select  enter open  n new  e edit  d delete  y copy  q quit"
	helpDetail = "e edit  d delete  y copy  esc close"
	helpForm   = "tab next field  enter save  esc cancel"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.Screen {
	screen := view.Screen{
		Width:       m.width,
		Height:      m.height,
		Bg:          m.styles.colorBg,
		Placeholder: "Loading...",
	}
	if m.width == 0 || m.height == 0 {
		return screen
	}
	if m.innerWidth() <= view.RulerWidth || m.timelineHeight() <= 0 {
		screen.Sections = []string{"Terminal too small"}
		return screen
	}

	// The app padding sits above the header and on both sides of every section.
	pad := m.styles.AppStyle
	screen.Sections = []string{
		pad.Render(view.RenderHeader(m.headerViewState())),
		pad.UnsetPaddingTop().Render(view.RenderTimeline(m.timelineViewState())),
		pad.UnsetPaddingTop().Render(view.RenderFooter(m.footerViewState())),
	}

	if m.mode == ModeModal && m.modalType != ModalNone {
		screen.Modal = m.renderModal()
		screen.Overlay = m.overlay.Show(m.styles.ModalBackdropColor)
	}
	return screen
}

func (m Model) headerViewState() view.HeaderModel {
	return view.HeaderModel{
		Width:      m.innerWidth(),
		Date:       m.date,
		Today:      m.now(),
		Title:      appTitle,
		TitleStyle: m.styles.TitleStyle,
		DateStyle:  m.styles.DateStyle,
		TodayStyle: m.styles.DateTodayStyle,
		Bg:         m.styles.colorBg,
	}
}

func (m Model) footerViewState() view.FooterModel {
	stats := ""
	switch {
	case m.day != nil:
		stats = statsText(m.day.Stats())
	case m.loading:
		stats = "Loading..."
	}

	return view.FooterModel{
		InnerW:      m.innerWidth(),
		StatsText:   stats,
		StatusText:  m.statusMsg,
		HelpText:    m.helpText(),
		StatsStyle:  m.styles.StatsStyle,
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}

func (m Model) helpText() string {
	if m.mode != ModeModal {
		return helpNormal
	}
	switch m.modalType {
	case ModalDetail:
		return helpDetail
	case ModalForm:
		return helpForm
	default:
		return ""
	}
}
