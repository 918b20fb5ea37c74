package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFrame_SkipsEmptySections(t *testing.T) {
	styles := ModalStyles{}

	got := Frame{Title: "Appointment"}.Render(styles)
	if strings.Contains(got, "\n") {
		t.Errorf("expected a single line for a title-only frame, got %q", got)
	}

	got = Frame{Title: "Appointment", Footer: "[Esc] Close"}.Render(styles)
	if lines := strings.Split(got, "\n"); len(lines) != 3 {
		t.Errorf("expected title, gap and footer, got %d lines: %q", len(lines), got)
	}
}

func TestButtonRow_CompactIsNarrower(t *testing.T) {
	styles := ModalStyles{}
	buttons := []Button{{Key: "e", Label: "Edit"}, {Key: "Esc", Label: "Close"}}

	wide := lipgloss.Width(ButtonRow(styles, false, buttons...))
	narrow := lipgloss.Width(ButtonRow(styles, true, buttons...))
	// two buttons lose two cells of padding on each side
	if wide-narrow != 8 {
		t.Errorf("expected compact row to be 8 cells narrower, got %d vs %d", narrow, wide)
	}
}

func TestButtonRow_DefaultStyle(t *testing.T) {
	styles := ModalStyles{
		Button:       lipgloss.NewStyle().Background(lipgloss.Color("#111111")),
		ButtonActive: lipgloss.NewStyle().Background(lipgloss.Color("#222222")),
		ButtonDanger: lipgloss.NewStyle().Background(lipgloss.Color("#ff0000")),
	}

	tests := []struct {
		name    string
		buttons []Button
		want    lipgloss.Style
	}{
		{"plain default", []Button{{Key: "Enter", Label: "Save"}}, styles.ButtonActive},
		{"danger default", []Button{{Key: "y", Label: "Delete", Danger: true}}, styles.ButtonDanger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ButtonRow(styles, false, tt.buttons...)
			want := tt.want.Padding(0, 3).Render(tt.buttons[0].String())
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}
