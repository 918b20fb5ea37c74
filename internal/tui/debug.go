package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/dayview/internal/logging"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "dayview-debug.log"

// newDebugLogger returns a JSON file logger when enabled, and a no-op
// logger otherwise. The terminal belongs to the renderer, so debug output
// never goes to stderr.
func newDebugLogger(enabled bool) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}
	logger, err := logging.NewFile(DebugLogPath)
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}
	logger.Debug("debug start", zap.String("log_file", DebugLogPath))
	return logger, nil
}

func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.logger.Debug("key press",
		zap.String("key", msg.String()),
		zap.String("mode", modeString(m.mode)),
	)
}

func (m Model) logModeChange(from, to Mode, reason string) {
	if from == to {
		return
	}
	m.logger.Debug("mode change",
		zap.String("from", modeString(from)),
		zap.String("to", modeString(to)),
		zap.String("reason", reason),
	)
}

// logDay records the loaded day and the block layout.
func (m Model) logDay(action string) {
	if m.day == nil {
		return
	}
	blocks := make([]map[string]any, 0, len(m.blocks))
	for i, b := range m.blocks {
		blocks = append(blocks, map[string]any{
			"id":       b.Primary.ID,
			"title":    truncateStr(b.Primary.Title, 20),
			"top":      b.Top,
			"height":   b.Height,
			"lines":    [2]int{m.lines[i].first, m.lines[i].last},
			"overlaps": b.OverlapCount(),
		})
	}
	m.logger.Debug("day",
		zap.String("action", action),
		zap.Time("date", m.date),
		zap.Int("appointments", m.day.Len()),
		zap.Any("blocks", blocks),
		zap.Int("selected", m.selected),
	)
}

func (m Model) logError(context string, err error) {
	m.logger.Debug("error", zap.String("context", context), zap.Error(err))
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// truncateStr truncates a string to max length.
func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
