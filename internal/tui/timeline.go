package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/layout"
	"github.com/javiermolinar/dayview/internal/tui/view"
)

// Fixed chrome around the timeline: top padding, the header and the footer.
const (
	appPaddingTop = 1
	appPaddingX   = 2
	headerHeight  = 1
)

// setDay replaces the shown day and recomputes the block layout.
func (m *Model) setDay(day *appointment.Day) {
	var prevID int64
	if b, ok := m.selectedBlock(); ok {
		prevID = b.Primary.ID
	}

	m.day = day
	m.blocks = day.Blocks(float64(m.linesPerHour))
	m.lines = assignLines(m.blocks, m.totalLines())

	m.selected = -1
	want := m.selectID
	if want == 0 {
		want = prevID
	}
	if want != 0 {
		m.selected = m.blockIndexOf(want)
	}
	m.selectID = 0
}

// assignLines maps each block's position to whole timeline lines. Blocks
// never share a line: a block whose first line is taken starts on the next
// free one, and every block gets at least one line.
func assignLines(blocks []layout.Block[*appointment.Appointment], total int) []lineRange {
	ranges := make([]lineRange, len(blocks))
	next := 0
	for i, b := range blocks {
		first := max(int(math.Floor(b.Top)), next)
		last := max(int(math.Ceil(b.Bottom()))-1, first)
		first = min(first, total-1)
		last = min(last, total-1)
		ranges[i] = lineRange{first: first, last: last}
		next = last + 1
	}
	return ranges
}

// blockIndexOf returns the block holding the appointment id, as primary or
// overlapped, or -1.
func (m Model) blockIndexOf(id int64) int {
	for i, b := range m.blocks {
		if b.Primary.ID == id {
			return i
		}
		for _, o := range b.Overlapped {
			if o.ID == id {
				return i
			}
		}
	}
	return -1
}

func (m Model) selectedBlock() (layout.Block[*appointment.Appointment], bool) {
	if m.selected < 0 || m.selected >= len(m.blocks) {
		return layout.Block[*appointment.Appointment]{}, false
	}
	return m.blocks[m.selected], true
}

func (m Model) totalLines() int {
	return layout.HoursPerDay * m.linesPerHour
}

func (m Model) innerWidth() int {
	return m.width - 2*appPaddingX
}

// timelineHeight is the number of timeline lines that fit on screen.
func (m Model) timelineHeight() int {
	return m.height - appPaddingTop - headerHeight - view.FooterHeight
}

// nowLine returns the timeline line holding the current time, or -1 when
// another day is shown.
func (m Model) nowLine() int {
	now := m.now()
	if !layout.SameDayUTC(now, m.date) {
		return -1
	}
	return int(layout.Calculate(now, now, m.date, float64(m.linesPerHour)).Top)
}

// defaultStartLine returns the line of the configured default start.
func (m Model) defaultStartLine() int {
	slot := m.sched.Slot(m.date)
	return int(layout.Calculate(slot.Start, slot.Start, m.date, float64(m.linesPerHour)).Top)
}

// focusDay picks the initial selection and scroll position for a freshly
// shown date: the ongoing or next block today, the first block on other
// days, and the default start when the day is empty.
func (m *Model) focusDay() {
	m.focused = true
	if len(m.blocks) == 0 {
		m.selected = -1
		m.scrollTo(m.defaultStartLine() - 1)
		return
	}

	if m.selected < 0 {
		m.selected = 0
		if layout.SameDayUTC(m.now(), m.date) {
			now := m.now()
			m.selected = len(m.blocks) - 1
			for i, b := range m.blocks {
				if b.Primary.End.After(now) {
					m.selected = i
					break
				}
			}
		}
	}
	m.scrollTo(m.lines[m.selected].first - 1)
}

func (m *Model) scrollTo(offset int) {
	maxOffset := max(m.totalLines()-m.timelineHeight(), 0)
	m.scrollOffset = min(max(offset, 0), maxOffset)
}

// ensureSelectedVisible scrolls the least amount that shows the start of the
// selected block.
func (m *Model) ensureSelectedVisible() {
	if m.selected < 0 || m.selected >= len(m.lines) {
		m.scrollTo(m.scrollOffset)
		return
	}
	r := m.lines[m.selected]
	h := m.timelineHeight()
	switch {
	case r.first < m.scrollOffset:
		m.scrollTo(r.first)
	case r.last >= m.scrollOffset+h:
		m.scrollTo(min(r.first, r.last-h+1))
	default:
		m.scrollTo(m.scrollOffset)
	}
}

// timelineViewState maps the arranged blocks onto view blocks.
func (m Model) timelineViewState() view.TimelineModel {
	now := m.now()
	blocks := make([]view.TimelineBlock, 0, len(m.blocks))
	alt := false
	for i, b := range m.blocks {
		r := m.lines[i]
		touching := i > 0 && r.first == m.lines[i-1].last+1
		alt = touching && !alt

		a := b.Primary
		var style lipgloss.Style
		switch {
		case i == m.selected:
			style = m.styles.BlockSelectedStyle
		case !a.Start.After(now) && a.End.After(now):
			style = m.styles.BlockCurrentStyle
		case !a.End.After(now) && alt:
			style = m.styles.BlockPastAltStyle
		case !a.End.After(now):
			style = m.styles.BlockPastStyle
		case alt:
			style = m.styles.BlockAltStyle
		default:
			style = m.styles.BlockStyle
		}

		badge := ""
		if n := b.OverlapCount(); n > 0 {
			badge = fmt.Sprintf("+%d", n)
		}
		blocks = append(blocks, view.TimelineBlock{
			First: r.first,
			Last:  r.last,
			Text:  blockText(a),
			Badge: badge,
			Style: style,
		})
	}

	return view.TimelineModel{
		Width:        m.innerWidth(),
		Height:       m.timelineHeight(),
		Offset:       m.scrollOffset,
		LinesPerHour: m.linesPerHour,
		NowLine:      m.nowLine(),
		Blocks:       blocks,
		RulerStyle:   m.styles.RulerStyle,
		NowStyle:     m.styles.NowStyle,
		GridStyle:    m.styles.GridStyle,
		EmptyStyle:   m.styles.EmptyStyle,
		BadgeStyle:   m.styles.BadgeStyle,
		Bg:           m.styles.colorBg,
	}
}

// blockText is the text shown inside a block, one entry per line.
func blockText(a *appointment.Appointment) []string {
	text := []string{view.FormatRange(a.Start, a.End) + "  " + a.Title}
	if a.Employee != nil && a.Employee.Name != "" {
		text = append(text, a.Employee.Name)
	}
	if a.Description != "" {
		first, _, _ := strings.Cut(a.Description, "\n")
		text = append(text, first)
	}
	return text
}
