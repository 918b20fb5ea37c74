package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const fallbackWidth = 80

// Output roles for the plain CLI views.
var (
	styleTitle   = color.New(color.FgCyan, color.Bold)
	styleRange   = color.New(color.FgBlue)
	styleBadge   = color.New(color.FgYellow)
	styleHeading = color.New(color.Bold)
	styleTotal   = color.New(color.FgGreen)
	styleMuted   = color.New(color.FgWhite, color.Faint)
)

// outputWidth reports the width of w when it is a terminal.
// Pipes, files and buffers get fallbackWidth.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// setColor toggles ANSI colors for every CLI view.
func setColor(enabled bool) {
	color.NoColor = !enabled
}

func styledTitle(s string) string { return styleTitle.Sprint(s) }
func styledRange(s string) string { return styleRange.Sprint(s) }
func styledBadge(s string) string { return styleBadge.Sprint(s) }
func styledHeading(s string) string { return styleHeading.Sprint(s) }
func styledTotal(s string) string { return styleTotal.Sprint(s) }
func styledMuted(s string) string { return styleMuted.Sprint(s) }
