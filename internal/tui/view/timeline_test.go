package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func renderPlain(t *testing.T, m TimelineModel) []string {
	t.Helper()
	return strings.Split(ansi.Strip(RenderTimeline(m)), "\n")
}

func TestRenderTimeline_RulerAndBlocks(t *testing.T) {
	m := TimelineModel{
		Width:        40,
		Height:       6,
		Offset:       18, // 09:00 at two lines per hour
		LinesPerHour: 2,
		NowLine:      -1,
		Blocks: []TimelineBlock{
			{First: 18, Last: 19, Text: []string{"09:00 - 10:00 Standup", "Ada"}, Badge: "+2"},
			{First: 22, Last: 22, Text: []string{"11:00 - 11:30 Review"}},
		},
	}

	lines := renderPlain(t, m)
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40: %q", i, w, line)
		}
	}

	if !strings.HasPrefix(lines[0], " 09:00") {
		t.Errorf("line 0 = %q, want hour label", lines[0])
	}
	if !strings.Contains(lines[0], "Standup") || !strings.Contains(lines[0], "+2") {
		t.Errorf("line 0 = %q, want title and badge", lines[0])
	}
	if !strings.Contains(lines[1], "Ada") {
		t.Errorf("line 1 = %q, want second block line", lines[1])
	}
	if !strings.Contains(lines[2], "10:00") || !strings.Contains(lines[2], "┈") {
		t.Errorf("line 2 = %q, want empty hour line", lines[2])
	}
	if strings.TrimSpace(lines[3]) != "" {
		t.Errorf("line 3 = %q, want blank half hour", lines[3])
	}
	if !strings.Contains(lines[4], "Review") {
		t.Errorf("line 4 = %q, want second block", lines[4])
	}
}

func TestRenderTimeline_NowMarker(t *testing.T) {
	m := TimelineModel{Width: 20, Height: 3, Offset: 0, LinesPerHour: 2, NowLine: 1}

	lines := renderPlain(t, m)
	if !strings.Contains(lines[1], "now") {
		t.Errorf("line 1 = %q, want now marker", lines[1])
	}
	if strings.Contains(lines[0], "now") {
		t.Errorf("line 0 = %q, did not expect now marker", lines[0])
	}
}

func TestRenderTimeline_StopsAtEndOfDay(t *testing.T) {
	m := TimelineModel{Width: 20, Height: 5, Offset: 22, LinesPerHour: 1, NowLine: -1}

	lines := renderPlain(t, m)
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5 with padding", len(lines))
	}
	if !strings.Contains(lines[1], "23:00") {
		t.Errorf("line 1 = %q, want last hour", lines[1])
	}
	if strings.TrimSpace(lines[2]) != "" {
		t.Errorf("line 2 = %q, want padding past midnight", lines[2])
	}
}

func TestRenderTimeline_TooNarrow(t *testing.T) {
	if got := RenderTimeline(TimelineModel{Width: RulerWidth, Height: 4, LinesPerHour: 1}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
