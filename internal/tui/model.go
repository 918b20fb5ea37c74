// Package tui provides the terminal day view for dayview.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/config"
	"github.com/javiermolinar/dayview/internal/dateutil"
	"github.com/javiermolinar/dayview/internal/db"
	"github.com/javiermolinar/dayview/internal/layout"
	"github.com/javiermolinar/dayview/internal/scheduler"
	"github.com/javiermolinar/dayview/internal/tui/commands"
	"github.com/javiermolinar/dayview/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	// ModalDetail shows the selected block with its overlapped appointments.
	ModalDetail
	// ModalForm creates or edits an appointment.
	ModalForm
	ModalConfirmDelete
)

// lineRange is the inclusive span of timeline lines a block occupies.
type lineRange struct {
	first int
	last  int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  appointment.Store
	config *config.Config
	sched  *scheduler.Scheduler
	logger *zap.Logger
	now    func() time.Time
	clip   func(string) error

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Day state
	date         time.Time // UTC midnight of the shown day
	day          *appointment.Day
	blocks       []layout.Block[*appointment.Appointment]
	lines        []lineRange // parallel to blocks
	linesPerHour int
	selected     int   // index into blocks, -1 when none
	selectID     int64 // appointment to select after the next load
	loading      bool
	focused      bool // scroll position set for the current date

	mode      Mode
	modalType ModalType
	modalFrom ModalType // modal to return to when a confirm is cancelled
	form      appointmentForm

	overlay OverlayModel

	// Terminal dimensions
	width        int
	height       int
	scrollOffset int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
		m.date = dateutil.TruncateToDay(now())
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.clip = write
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) ModelOption {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates a new TUI model showing today.
func New(store appointment.Store, cfg *config.Config, opts ...ModelOption) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	sched, err := scheduler.New(cfg.Layout.DefaultStart, cfg.Layout.DefaultDuration.Duration)
	if err != nil {
		sched, _ = scheduler.New("08:00", time.Hour)
	}

	linesPerHour := cfg.Layout.LinesPerHour
	if linesPerHour <= 0 {
		linesPerHour = 2
	}

	m := Model{
		store:        store,
		config:       cfg,
		sched:        sched,
		logger:       zap.NewNop(),
		now:          time.Now,
		clip:         clipboard.WriteAll,
		theme:        t,
		styles:       styles,
		date:         dateutil.Today(),
		linesPerHour: linesPerHour,
		selected:     -1,
		mode:         ModeNormal,
		form:         newAppointmentForm(styles),
		overlay:      NewOverlayModel(),
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init loads the initial day.
func (m Model) Init() tea.Cmd {
	return commands.LoadDay(m.store, m.date)
}

// Run starts the TUI. A nil store opens the configured database, which is
// closed on exit.
func Run(store appointment.Store, cfg *config.Config, debug bool) error {
	logger, err := newDebugLogger(debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if store == nil {
		s, err := openStore(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		store = s
	}

	model := New(store, cfg, WithLogger(logger))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func openStore(dbPath string) (*db.SQLite, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	store, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return store, nil
}
