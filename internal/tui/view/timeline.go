package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RulerWidth is the width of the hour ruler on the left of the timeline.
const RulerWidth = 7

// TimelineBlock is a block already mapped onto timeline lines.
type TimelineBlock struct {
	First int // first line, inclusive
	Last  int // last line, inclusive
	Text  []string
	Badge string
	Style lipgloss.Style
}

// TimelineModel contains everything needed to render the visible part of
// the day timeline.
type TimelineModel struct {
	Width        int
	Height       int
	Offset       int
	LinesPerHour int
	NowLine      int // -1 hides the now marker
	Blocks       []TimelineBlock
	RulerStyle   lipgloss.Style
	NowStyle     lipgloss.Style
	GridStyle    lipgloss.Style
	EmptyStyle   lipgloss.Style
	BadgeStyle   lipgloss.Style
	Bg           lipgloss.Color
}

// TotalLines returns the height of a full day.
func (m TimelineModel) TotalLines() int {
	return 24 * m.LinesPerHour
}

// RenderTimeline renders lines [Offset, Offset+Height) of the day. Blocks
// must be sorted by First and must not share lines.
func RenderTimeline(m TimelineModel) string {
	if m.Width <= RulerWidth || m.Height <= 0 || m.LinesPerHour <= 0 {
		return ""
	}
	contentW := m.Width - RulerWidth
	end := min(m.Offset+m.Height, m.TotalLines())

	lines := make([]string, 0, m.Height)
	next := 0
	for i := m.Offset; i < end; i++ {
		for next < len(m.Blocks) && m.Blocks[next].Last < i {
			next++
		}

		ruler := m.ruler(i)
		if next < len(m.Blocks) && m.Blocks[next].First <= i {
			lines = append(lines, ruler+m.blockLine(m.Blocks[next], i, contentW))
			continue
		}
		lines = append(lines, ruler+m.emptyLine(i, contentW))
	}

	filler := lipgloss.NewStyle().Background(m.Bg).Width(m.Width).Render("")
	for len(lines) < m.Height {
		lines = append(lines, filler)
	}
	return strings.Join(lines, "\n")
}

func (m TimelineModel) ruler(line int) string {
	style := m.RulerStyle.Width(RulerWidth)
	label := ""
	if line%m.LinesPerHour == 0 {
		label = fmt.Sprintf(" %02d:00", line/m.LinesPerHour)
	}
	if line == m.NowLine {
		if label == "" {
			label = "   now"
		}
		style = m.NowStyle.Width(RulerWidth)
	}
	return style.Render(label)
}

func (m TimelineModel) blockLine(b TimelineBlock, line, width int) string {
	text := ""
	if idx := line - b.First; idx < len(b.Text) {
		text = b.Text[idx]
	}

	if line != b.First || b.Badge == "" {
		return b.Style.Width(width).Render(" " + ansi.Truncate(text, width-2, "…"))
	}

	badge := m.BadgeStyle.Render(" " + b.Badge + " ")
	badgeW := lipgloss.Width(badge)
	textW := width - badgeW
	if textW < 2 {
		return b.Style.Width(width).Render(" " + ansi.Truncate(text, width-2, "…"))
	}
	return b.Style.Width(textW).Render(" "+ansi.Truncate(text, textW-2, "…")) + badge
}

func (m TimelineModel) emptyLine(line, width int) string {
	if line%m.LinesPerHour == 0 {
		return m.GridStyle.Width(width).Render(strings.Repeat("┈", width))
	}
	return m.EmptyStyle.Width(width).Render("")
}
