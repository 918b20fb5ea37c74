package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FillBackground returns content as exactly height lines, each padded to
// width cells with bg. Extra lines are dropped; wider lines are kept as is.
func FillBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	pad := lipgloss.NewStyle().Background(bg)

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + pad.Render(strings.Repeat(" ", width-w))
		}
	}
	return strings.Join(lines, "\n")
}

// bottomAligned places content at the bottom of a width x height box
// filled with bg.
func bottomAligned(content string, width, height int, bg lipgloss.Color) string {
	placed := lipgloss.Place(width, height, lipgloss.Left, lipgloss.Bottom, content,
		lipgloss.WithWhitespaceBackground(bg))
	return FillBackground(placed, width, height, bg)
}
