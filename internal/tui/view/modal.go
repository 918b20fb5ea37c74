package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles shared by every modal frame.
type ModalStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	ButtonDanger lipgloss.Style
}

// Frame is a titled modal. Empty body or footer sections are left out.
type Frame struct {
	Title  string
	Body   string
	Footer string
}

// Render draws the frame with a blank line between sections.
func (f Frame) Render(styles ModalStyles) string {
	sections := []string{styles.Header.Render(styles.Title.Render(f.Title))}
	if f.Body != "" {
		sections = append(sections, f.Body)
	}
	if f.Footer != "" {
		sections = append(sections, styles.Footer.Render(f.Footer))
	}
	return styles.Frame.Render(strings.Join(sections, "\n\n"))
}

// Button is a key hint shown in a modal footer.
type Button struct {
	Key    string
	Label  string
	Danger bool
}

func (b Button) String() string {
	return "[" + b.Key + "] " + b.Label
}

// ButtonRow renders buttons left to right. The first one is the default
// action and is highlighted; a default Danger button uses the warning style.
func ButtonRow(styles ModalStyles, compact bool, buttons ...Button) string {
	pad := 3
	if compact {
		pad = 1
	}

	parts := make([]string, 0, len(buttons))
	for i, b := range buttons {
		style := styles.Button
		switch {
		case i == 0 && b.Danger:
			style = styles.ButtonDanger
		case i == 0:
			style = styles.ButtonActive
		}
		parts = append(parts, style.Padding(0, pad).Render(b.String()))
	}
	return strings.Join(parts, styles.Body.Render(" "))
}
