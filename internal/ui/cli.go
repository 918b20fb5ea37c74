package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/config"
	"github.com/javiermolinar/dayview/internal/db"
	"github.com/javiermolinar/dayview/internal/logging"
	"github.com/javiermolinar/dayview/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store      appointment.Store
	config     *config.Config
	logger     *zap.Logger
	root       *cobra.Command
	out        io.Writer
	configPath string
	debug      bool // Enable debug logging
	now        func() time.Time
}

// NewApp creates a new CLI application. A nil store is opened lazily from
// the configured database path; a nil config is loaded from disk.
func NewApp(store appointment.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg, out: os.Stdout, logger: zap.NewNop(), now: time.Now}

	a.root = &cobra.Command{
		Use:   "dayview",
		Short: "A day view calendar for appointments",
		Long: `Dayview keeps employee appointments in a local database and lays
each day out as a timeline, grouping overlapping appointments.

Run without a subcommand to open the interactive day view, or use
'dayview serve' to expose the REST API.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			return tui.Run(a.store, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: "+config.DefaultConfigPath()+")")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.serveCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.closestCmd())
	a.root.AddCommand(a.employeeCmd())
	a.root.AddCommand(a.departmentCmd())
	a.root.AddCommand(a.seedCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

// setup loads configuration and builds the logger before any command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.config == nil || cmd.Flags().Changed("config") {
		var (
			cfg *config.Config
			err error
		)
		if a.configPath != "" {
			cfg, err = config.LoadFrom(a.configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}

	logCfg := a.config.Log
	if a.debug {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.logger = logger
	return nil
}

// ensureStore opens the configured database if no store was injected.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	store, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.logger.Debug("opened database", zap.String("path", path))
	a.store = store
	return nil
}

// storeCmd wraps a RunE so the store is open before it runs.
func (a *App) storeCmd(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.ensureStore(); err != nil {
			return err
		}
		return run(cmd, args)
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(a.out, "dayview %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	_ = a.logger.Sync()
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
