package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/config"
)

func appt(id int64, title string, start, end time.Time) *appointment.Appointment {
	return &appointment.Appointment{ID: id, Title: title, Start: start, End: end}
}

func TestAssignLines(t *testing.T) {
	day := at(7, 0, 0)
	tests := []struct {
		name  string
		appts []*appointment.Appointment
		want  []lineRange
	}{
		{
			name: "whole hours",
			appts: []*appointment.Appointment{
				appt(1, "a", at(7, 9, 0), at(7, 10, 0)),
				appt(2, "b", at(7, 11, 0), at(7, 12, 30)),
			},
			want: []lineRange{{18, 19}, {22, 24}},
		},
		{
			name: "short block keeps one line",
			appts: []*appointment.Appointment{
				appt(1, "a", at(7, 9, 0), at(7, 9, 10)),
			},
			want: []lineRange{{18, 18}},
		},
		{
			name: "touching blocks sharing a partial line are pushed down",
			appts: []*appointment.Appointment{
				appt(1, "a", at(7, 9, 0), at(7, 9, 45)),
				appt(2, "b", at(7, 9, 45), at(7, 11, 0)),
			},
			want: []lineRange{{18, 19}, {20, 21}},
		},
		{
			name: "block past midnight is clamped",
			appts: []*appointment.Appointment{
				appt(1, "a", at(7, 23, 0), at(8, 1, 0)),
			},
			want: []lineRange{{46, 47}},
		},
		{
			name: "block from the previous day starts at the top",
			appts: []*appointment.Appointment{
				appt(1, "a", at(6, 22, 0), at(7, 1, 0)),
			},
			want: []lineRange{{0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := appointment.NewDay(day, tt.appts).Blocks(2)
			got := assignLines(blocks, 48)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d ranges, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("block %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func newLayoutModel(t *testing.T, appts ...*appointment.Appointment) Model {
	t.Helper()
	m := New(nil, config.Default(), WithClock(func() time.Time { return testNow }))
	m.width, m.height = 80, 15 // ten timeline lines
	m.setDay(appointment.NewDay(m.date, appts))
	return m
}

func TestFocusDay_EmptyDayScrollsToDefaultStart(t *testing.T) {
	m := newLayoutModel(t)
	m.focusDay()
	// 08:00 is line 16; one line of context above it.
	if m.scrollOffset != 15 {
		t.Errorf("expected offset 15, got %d", m.scrollOffset)
	}
	if m.selected != -1 {
		t.Errorf("expected no selection, got %d", m.selected)
	}
}

func TestFocusDay_SelectsNextBlockToday(t *testing.T) {
	m := newLayoutModel(t,
		appt(1, "early", at(7, 7, 0), at(7, 8, 0)),
		appt(2, "late", at(7, 14, 0), at(7, 15, 0)),
	)
	m.focusDay()
	if m.selected != 1 {
		t.Errorf("expected the next block to be selected, got %d", m.selected)
	}
	if m.scrollOffset != 27 {
		t.Errorf("expected offset 27, got %d", m.scrollOffset)
	}
}

func TestFocusDay_AllPastSelectsLast(t *testing.T) {
	m := newLayoutModel(t,
		appt(1, "a", at(7, 6, 0), at(7, 7, 0)),
		appt(2, "b", at(7, 7, 0), at(7, 8, 0)),
	)
	m.focusDay()
	if m.selected != 1 {
		t.Errorf("expected the last block to be selected, got %d", m.selected)
	}
}

func TestScrollTo_Clamps(t *testing.T) {
	m := newLayoutModel(t)
	m.scrollTo(-5)
	if m.scrollOffset != 0 {
		t.Errorf("expected 0, got %d", m.scrollOffset)
	}
	m.scrollTo(100)
	if m.scrollOffset != 38 {
		t.Errorf("expected 38, got %d", m.scrollOffset)
	}
}

func TestEnsureSelectedVisible(t *testing.T) {
	m := newLayoutModel(t,
		appt(1, "a", at(7, 1, 0), at(7, 2, 0)),
		appt(2, "b", at(7, 20, 0), at(7, 21, 0)),
	)
	m.selected = 1
	m.ensureSelectedVisible()
	// lines 40-41 must be inside [offset, offset+10)
	if m.scrollOffset != 32 {
		t.Errorf("expected offset 32, got %d", m.scrollOffset)
	}

	m.selected = 0
	m.ensureSelectedVisible()
	if m.scrollOffset != 2 {
		t.Errorf("expected offset 2, got %d", m.scrollOffset)
	}
}

func TestSetDay_KeepsSelectionByID(t *testing.T) {
	m := newLayoutModel(t,
		appt(1, "a", at(7, 9, 0), at(7, 10, 0)),
		appt(2, "b", at(7, 11, 0), at(7, 12, 0)),
	)
	m.selected = 1

	m.setDay(appointment.NewDay(m.date, []*appointment.Appointment{
		appt(3, "new", at(7, 6, 0), at(7, 7, 0)),
		appt(1, "a", at(7, 9, 0), at(7, 10, 0)),
		appt(2, "b", at(7, 11, 0), at(7, 12, 0)),
	}))
	if m.selected != 2 {
		t.Errorf("expected selection to follow appointment 2, got %d", m.selected)
	}
}

func TestNowLine(t *testing.T) {
	m := newLayoutModel(t)
	if got := m.nowLine(); got != 19 {
		t.Errorf("expected now on line 19, got %d", got)
	}
	m.date = m.date.AddDate(0, 0, 1)
	if got := m.nowLine(); got != -1 {
		t.Errorf("expected no now line on another day, got %d", got)
	}
}

func TestTimelineViewState_Styles(t *testing.T) {
	m := newLayoutModel(t,
		appt(1, "past", at(7, 7, 0), at(7, 8, 0)),
		appt(2, "now", at(7, 9, 0), at(7, 10, 0)),
		appt(3, "overlap", at(7, 9, 15), at(7, 9, 45)),
		appt(4, "later", at(7, 11, 0), at(7, 12, 0)),
	)
	m.selected = 2

	tl := m.timelineViewState()
	if len(tl.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(tl.Blocks))
	}
	cases := []struct {
		idx  int
		want lipgloss.TerminalColor
	}{
		{0, m.styles.BlockPastStyle.GetBackground()},
		{1, m.styles.BlockCurrentStyle.GetBackground()},
		{2, m.styles.BlockSelectedStyle.GetBackground()},
	}
	for _, c := range cases {
		if got := tl.Blocks[c.idx].Style.GetBackground(); got != c.want {
			t.Errorf("block %d: expected background %v, got %v", c.idx, c.want, got)
		}
	}
	if tl.Blocks[1].Badge != "+1" {
		t.Errorf("expected +1 badge, got %q", tl.Blocks[1].Badge)
	}
	if tl.NowLine != 19 {
		t.Errorf("expected now line 19, got %d", tl.NowLine)
	}
}

func TestBlockText(t *testing.T) {
	a := appt(1, "Planning", at(7, 9, 0), at(7, 10, 0))
	a.Employee = &appointment.Employee{ID: 1, Name: "Ada"}
	a.Description = "Roadmap\nsecond line"

	got := blockText(a)
	want := []string{"09:00 - 10:00  Planning", "Ada", "Roadmap"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
