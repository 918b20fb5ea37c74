package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Palette holds the lipgloss colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Overlap     lipgloss.Color
	Current     lipgloss.Color
	Warning     lipgloss.Color

	// Block shades. The Alt variants tell touching blocks apart.
	BlockBg    lipgloss.Color
	BlockBgAlt lipgloss.Color
	PastBg     lipgloss.Color
	PastBgAlt  lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnWarning lipgloss.Color
	TextOnCurrent lipgloss.Color
	TextOnBlock   lipgloss.Color
	TextOnOverlap lipgloss.Color

	Modal ModalColors
}

// ModalColors holds the resolved modal colors.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
	Backdrop    lipgloss.Color
}

// NewPalette derives a Palette from t. A nil theme uses DefaultName.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	light := isLight(t.Bg)
	block := blockShade(t.Block, t.Bg, light)
	past := pastShade(t.Block, t.Bg, light)
	modal := t.ResolveModal()
	panel := coalesce(t.BgSelection, t.BgHighlight, t.Bg)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Overlap:     lipgloss.Color(t.Overlap),
		Current:     lipgloss.Color(t.Current),
		Warning:     lipgloss.Color(t.Warning),

		BlockBg:    lipgloss.Color(block),
		BlockBgAlt: lipgloss.Color(altShade(block, light)),
		PastBg:     lipgloss.Color(past),
		PastBgAlt:  lipgloss.Color(altShade(past, light)),

		TextOnAccent:  lipgloss.Color(readableOn(t.Accent, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(readableOn(t.Warning, t.Bg, t.Fg)),
		TextOnCurrent: lipgloss.Color(readableOn(t.Current, t.Bg, t.Fg)),
		TextOnBlock:   lipgloss.Color(readableOn(block, t.Fg, t.Bg)),
		TextOnOverlap: lipgloss.Color(readableOn(t.Overlap, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:          lipgloss.Color(modal.Bg),
			Border:      fixed(modal.Border),
			Text:        fixed(modal.Text),
			Muted:       fixed(modal.Muted),
			Highlight:   fixed(modal.Highlight),
			Panel:       fixed(panel),
			ReverseText: lipgloss.AdaptiveColor{Dark: modal.Bg, Light: modal.Text},
			Backdrop:    lipgloss.Color(panel),
		},
	}
}

func fixed(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

func isLight(bg string) bool {
	return luminance(bg) > 0.55
}

// blockShade is the background of upcoming blocks: a tint of the block
// color over light themes, a darkened block color on dark ones.
func blockShade(block, bg string, light bool) string {
	if light {
		return blend(block, bg, 0.75)
	}
	return scale(block, 0.50, 40)
}

// pastShade is weaker than blockShade so finished appointments recede.
func pastShade(block, bg string, light bool) string {
	if light {
		return blend(block, bg, 0.88)
	}
	return scale(block, 0.30, 30)
}

func altShade(hex string, light bool) string {
	if light {
		return blendWith(hex, black, 0.10)
	}
	return blendWith(hex, white, 0.30)
}

// scale multiplies each channel by factor, keeping it at or above floor
// (0-255) so blocks stay visible on dark backgrounds.
func scale(hex string, factor float64, floor int) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	lo := float64(floor) / 255
	ch := func(v float64) float64 { return max(v*factor, lo) }
	return colorful.Color{R: ch(c.R), G: ch(c.G), B: ch(c.B)}.Hex()
}

func blend(a, b string, ratio float64) string {
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return blendWith(a, cb, ratio)
}

func blendWith(hex string, to colorful.Color, ratio float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendRgb(to, min(max(ratio, 0), 1)).Clamped().Hex()
}

// readableOn picks whichever of a and b contrasts more with bg.
func readableOn(bg, a, b string) string {
	if contrast(bg, a) >= contrast(bg, b) {
		return a
	}
	return b
}

func contrast(x, y string) float64 {
	hi, lo := luminance(x), luminance(y)
	if hi < lo {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05)
}

// luminance is the WCAG relative luminance of hex, or 0 if it doesn't parse.
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
