package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayview/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	// Title and day header
	TitleStyle     lipgloss.Style
	DateStyle      lipgloss.Style
	DateTodayStyle lipgloss.Style

	// Timeline
	RulerStyle lipgloss.Style
	NowStyle   lipgloss.Style
	GridStyle  lipgloss.Style
	EmptyStyle lipgloss.Style

	// Appointment blocks
	BlockStyle         lipgloss.Style
	BlockAltStyle      lipgloss.Style // Alternate shade for touching blocks
	BlockPastStyle     lipgloss.Style
	BlockPastAltStyle  lipgloss.Style
	BlockCurrentStyle  lipgloss.Style // Block running now
	BlockSelectedStyle lipgloss.Style
	BadgeStyle         lipgloss.Style

	// Footer
	StatsStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalTagStyle          lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalButtonDangerStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.DateStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.DateTodayStyle = s.DateStyle.
		Foreground(palette.Accent).
		Bold(true)

	s.RulerStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.NowStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnCurrent).
		Background(palette.Current).
		Bold(true)

	s.GridStyle = lipgloss.NewStyle().
		Foreground(palette.BgSelection).
		Background(palette.Bg)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.BlockStyle = lipgloss.NewStyle().
		Background(palette.BlockBg).
		Foreground(palette.TextOnBlock).
		Bold(true)

	s.BlockAltStyle = s.BlockStyle.
		Background(palette.BlockBgAlt)

	// Past blocks keep the bright foreground so they stay readable
	s.BlockPastStyle = lipgloss.NewStyle().
		Background(palette.PastBg).
		Foreground(palette.Fg)

	s.BlockPastAltStyle = s.BlockPastStyle.
		Background(palette.PastBgAlt)

	s.BlockCurrentStyle = lipgloss.NewStyle().
		Background(palette.Current).
		Foreground(palette.TextOnCurrent).
		Bold(true)

	s.BlockSelectedStyle = lipgloss.NewStyle().
		Background(palette.Accent).
		Foreground(palette.TextOnAccent).
		Bold(true)

	s.BadgeStyle = lipgloss.NewStyle().
		Background(palette.Overlap).
		Foreground(palette.TextOnOverlap).
		Bold(true)

	s.StatsStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(palette.Bg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	// Padding gives every section the same indentation
	s.AppStyle = lipgloss.NewStyle().
		Background(palette.Bg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2)

	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(64).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalTagStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Panel).
		Bold(true).
		Padding(0, 1)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Width(8).
		Background(modalBg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(50)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modal.Highlight).
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(50)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalButtonDangerStyle = lipgloss.NewStyle().
		Background(palette.Warning).
		Foreground(palette.TextOnWarning).
		Padding(0, 3).
		Bold(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(modalBg).
		Bold(true)

	return s
}
