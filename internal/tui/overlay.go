package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Backdrop bounds, in cells. The backdrop grows to fit larger modals.
const (
	overlayMinWidth  = 18
	overlayMinHeight = 5
	overlayMaxWidth  = 48
	overlayMaxHeight = 12
)

// OverlayModel draws a modal centered on an opaque backdrop over the
// rendered day.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel returns a hidden overlay.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Show returns a visible copy of the overlay using bg for the backdrop.
func (o OverlayModel) Show(bg lipgloss.Color) OverlayModel {
	o.active = true
	o.bgColor = bg
	return o
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// Render draws content on a centered backdrop over base. base is cut or
// padded to width x height first.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := splitContent(content)
	contentW, contentH := blockSize(contentLines)
	boxW, boxH := o.boxSize(width, height)
	boxW = min(max(boxW, contentW), width)
	boxH = min(max(boxH, contentH), height)

	top := max((height-boxH)/2, 0)
	left := max((width-boxW)/2, 0)

	rows := fitBase(base, width, height)
	box := o.backdrop(boxW, boxH)
	o.placeContent(box, contentLines, boxW, boxH)

	for i, line := range box {
		row := top + i
		rows[row] = ansi.Cut(rows[row], 0, left) + line + ansi.Cut(rows[row], left+boxW, width)
	}
	return strings.Join(rows, "\n")
}

// boxSize returns the default backdrop size for the screen.
func (o OverlayModel) boxSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	boxW := min(max(width/2, overlayMinWidth), overlayMaxWidth, width)
	boxH := min(max(height/3, overlayMinHeight), overlayMaxHeight, height)
	return boxW, boxH
}

func (o OverlayModel) bgSeq() string {
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

func (o OverlayModel) backdrop(width, height int) []string {
	line := o.bgSeq() + strings.Repeat(" ", width) + ansi.ResetStyle
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

// placeContent centers content inside box. Resets inside content are
// followed by the backdrop color so styled spans don't punch holes in it.
func (o OverlayModel) placeContent(box, content []string, width, height int) {
	contentW, contentH := blockSize(content)
	if contentW == 0 {
		return
	}
	contentW = min(contentW, width)
	contentH = min(contentH, height)
	top := (height - contentH) / 2
	left := (width - contentW) / 2

	bg := o.bgSeq()
	for i := range contentH {
		line := content[i]
		w := lipgloss.Width(line)
		if w > contentW {
			line = ansi.Cut(line, 0, contentW)
			w = contentW
		}
		line += strings.Repeat(" ", contentW-w)
		line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bg)
		line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bg)
		line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bg)

		right := width - left - contentW
		box[top+i] = bg + strings.Repeat(" ", left) + line + bg + strings.Repeat(" ", right) + ansi.ResetStyle
	}
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

func blockSize(lines []string) (int, int) {
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return w, len(lines)
}

// fitBase cuts or pads base to exactly height lines of width cells.
func fitBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
