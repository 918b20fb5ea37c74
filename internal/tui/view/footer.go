package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterHeight is the number of lines RenderFooter produces.
const FooterHeight = 3

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	StatsText   string
	StatusText  string
	HelpText    string
	StatsStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the stats, status and help lines.
func RenderFooter(model FooterModel) string {
	if model.InnerW <= 0 {
		return ""
	}
	s := footerLine(model.InnerW, model.StatsStyle, model.StatsText) + "\n"
	s += footerLine(model.InnerW, model.StatusStyle, model.StatusText) + "\n"
	s += footerLine(model.InnerW, model.HelpStyle, model.HelpText)
	return bottomAligned(s, model.InnerW, FooterHeight, model.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
