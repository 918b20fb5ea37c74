// Package theme loads the embedded TUI color themes and derives the
// shades used for appointment blocks and modals.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embedded embed.FS

// DefaultName is loaded when no theme, or an unknown one, is configured.
const DefaultName = "mocha"

var names = []string{"mocha", "macchiato", "frappe", "latte"}

// Theme is one embedded TOML theme. Colors are #rrggbb.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // ruler
	BgSelection string `toml:"bg_selection"` // grid lines, modal backdrop
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"`
	Accent      string `toml:"accent"` // title, selected block
	Block       string `toml:"block"`  // appointment blocks
	Overlap     string `toml:"overlap"`
	Current     string `toml:"current"` // now line, running appointment
	Warning     string `toml:"warning"`

	Modal ModalTheme `toml:"modal"`
}

// ModalTheme overrides base colors inside modals. Empty values fall back
// to the base theme, see ResolveModal.
type ModalTheme struct {
	Bg        string `toml:"bg"`
	Border    string `toml:"border"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Highlight string `toml:"highlight"`
}

// Load reads the named theme, case-insensitively.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embedded.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return &t, nil
}

func (t *Theme) validate() error {
	colors := []struct{ key, value string }{
		{"bg", t.Bg},
		{"bg_highlight", t.BgHighlight},
		{"bg_selection", t.BgSelection},
		{"fg", t.Fg},
		{"fg_muted", t.FgMuted},
		{"accent", t.Accent},
		{"block", t.Block},
		{"overlap", t.Overlap},
		{"current", t.Current},
		{"warning", t.Warning},
	}
	for _, c := range colors {
		if _, err := colorful.Hex(c.value); err != nil {
			return fmt.Errorf("%s: invalid color %q", c.key, c.value)
		}
	}
	return nil
}

// ResolveModal fills the empty modal overrides from the base colors.
func (t *Theme) ResolveModal() ModalTheme {
	return ModalTheme{
		Bg:        coalesce(t.Modal.Bg, t.BgHighlight, t.Bg),
		Border:    coalesce(t.Modal.Border, t.Accent),
		Text:      coalesce(t.Modal.Text, t.Fg),
		Muted:     coalesce(t.Modal.Muted, t.FgMuted),
		Highlight: coalesce(t.Modal.Highlight, t.BgSelection, t.Accent),
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available lists the embedded theme names.
func Available() []string {
	return slices.Clone(names)
}

// IsAvailable reports whether name is an embedded theme.
func IsAvailable(name string) bool {
	return slices.Contains(names, strings.ToLower(name))
}
