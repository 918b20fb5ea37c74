package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func dotted(width, height int) string {
	row := strings.Repeat(".", width)
	return strings.Repeat(row+"\n", height-1) + row
}

func TestOverlay_HiddenReturnsBase(t *testing.T) {
	base := "alpha\nbeta"
	if got := NewOverlayModel().Render(base, 10, 2, "content"); got != base {
		t.Fatalf("expected base unchanged while hidden, got %q", got)
	}
}

func TestOverlay_ShowReturnsCopy(t *testing.T) {
	hidden := NewOverlayModel()
	shown := hidden.Show(lipgloss.Color("#101010"))
	if !shown.Active() || hidden.Active() {
		t.Fatalf("expected only the returned overlay to be visible")
	}
}

func TestOverlay_BackdropRows(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		content       string
	}{
		{"small screen", 30, 12, "NEW APPOINTMENT"},
		{"large screen", 100, 40, "Delete Appointment\n\nStandup"},
		{"content wider than default box", 80, 30, strings.Repeat("x", 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOverlayModel().Show(lipgloss.Color("#0c0c0c"))
			got := o.Render(dotted(tt.width, tt.height), tt.width, tt.height, tt.content)

			lines := strings.Split(got, "\n")
			if len(lines) != tt.height {
				t.Fatalf("expected %d lines, got %d", tt.height, len(lines))
			}
			for _, want := range strings.Split(tt.content, "\n") {
				if !strings.Contains(ansi.Strip(got), want) {
					t.Errorf("expected output to contain %q", want)
				}
			}

			contentW, contentH := blockSize(splitContent(tt.content))
			boxW, boxH := o.boxSize(tt.width, tt.height)
			boxW, boxH = max(boxW, contentW), max(boxH, contentH)
			top := (tt.height - boxH) / 2
			for i, line := range lines {
				if w := lipgloss.Width(line); w != tt.width {
					t.Fatalf("line %d: expected width %d, got %d", i, tt.width, w)
				}
				inBox := i >= top && i < top+boxH
				if hasBg := strings.Contains(line, o.bgSeq()); hasBg != inBox {
					t.Errorf("line %d: backdrop present = %t, want %t", i, hasBg, inBox)
				}
			}
		})
	}
}

func TestOverlay_ResetsKeepBackdrop(t *testing.T) {
	o := NewOverlayModel().Show(lipgloss.Color("#123456"))
	styled := "\x1b[1mbold\x1b[0m plain"

	got := o.Render(dotted(40, 10), 40, 10, styled)
	if !strings.Contains(got, "\x1b[0m"+o.bgSeq()) {
		t.Errorf("expected the backdrop color to be restored after a reset")
	}
}

func TestOverlay_BoxSizeBounds(t *testing.T) {
	o := NewOverlayModel()
	tests := []struct {
		width, height int
		wantW, wantH  int
	}{
		{20, 6, overlayMinWidth, overlayMinHeight},
		{60, 24, 30, 8},
		{200, 60, overlayMaxWidth, overlayMaxHeight},
		{10, 3, 10, 3},
	}
	for _, tt := range tests {
		w, h := o.boxSize(tt.width, tt.height)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("boxSize(%d, %d) = %d, %d; want %d, %d", tt.width, tt.height, w, h, tt.wantW, tt.wantH)
		}
	}
}
