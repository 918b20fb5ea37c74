// Package view renders the day view sections as strings. It holds no
// state; the tui package builds the models passed in here.
package view

import "github.com/charmbracelet/lipgloss"

// OverlayRenderer draws modal content over an already rendered screen.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// Screen is one full frame: sections stacked top to bottom, plus an
// optional modal drawn by Overlay.
type Screen struct {
	Width       int
	Height      int
	Bg          lipgloss.Color
	Placeholder string // shown before the first resize
	Sections    []string
	Modal       string
	Overlay     OverlayRenderer
}

// Render stacks the non-empty sections, fills the screen with Bg and
// draws the modal on top.
func Render(s Screen) string {
	if s.Width == 0 || s.Height == 0 {
		return s.Placeholder
	}

	sections := make([]string, 0, len(s.Sections))
	for _, section := range s.Sections {
		if section != "" {
			sections = append(sections, section)
		}
	}
	base := FillBackground(lipgloss.JoinVertical(lipgloss.Left, sections...), s.Width, s.Height, s.Bg)

	if s.Modal == "" || s.Overlay == nil {
		return base
	}
	return s.Overlay.Render(base, s.Width, s.Height, s.Modal)
}
