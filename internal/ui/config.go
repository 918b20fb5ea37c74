package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayview/internal/config"
	"github.com/javiermolinar/dayview/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  dayview config
  dayview --config ./office.toml config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			p := &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: a.out}
			return p.editConfig(path)
		},
	}
}

// prompter asks questions on out and reads answers line by line from in.
// Once in is exhausted every question keeps its current value.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func (p *prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) readLine() string {
	if p.eof {
		return ""
	}
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

func (p *prompter) editConfig(path string) error {
	p.printf("Config file: %s\n\n", path)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		p.printf("No config file found. Creating with default values...\n")
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		p.printf("Created %s\n\n", path)
	}

	printConfig(p.out, cfg)

	if !p.yesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Server.Addr = p.value("API listen address", cfg.Server.Addr)
	cfg.Server.AllowedOrigins = p.list("Allowed CORS origins (comma-separated)", cfg.Server.AllowedOrigins)
	cfg.Storage.DBPath = p.value("Database path", cfg.Storage.DBPath)
	cfg.Layout.HourHeight = p.positiveFloat("Day view hour height (px)", cfg.Layout.HourHeight)
	cfg.Layout.DefaultStart = p.value("New appointment start (HH:MM)", cfg.Layout.DefaultStart)
	cfg.Layout.DefaultDuration = p.duration("New appointment duration", cfg.Layout.DefaultDuration)
	cfg.UI.Theme = p.theme(cfg.UI.Theme)
	cfg.Log.Level = p.value("Log level", cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	p.printf("\nConfiguration saved!\n")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	rows := []struct{ section, key, value string }{
		{"server", "addr", cfg.Server.Addr},
		{"server", "allowed_origins", strings.Join(cfg.Server.AllowedOrigins, ", ")},
		{"server", "rate_limit_per_minute", strconv.Itoa(cfg.Server.RateLimitPerMinute)},
		{"server", "shutdown_timeout", cfg.Server.ShutdownTimeout.String()},
		{"storage", "db_path", cfg.Storage.DBPath},
		{"layout", "hour_height", strconv.FormatFloat(cfg.Layout.HourHeight, 'g', -1, 64)},
		{"layout", "lines_per_hour", strconv.Itoa(cfg.Layout.LinesPerHour)},
		{"layout", "default_start", cfg.Layout.DefaultStart},
		{"layout", "default_duration", cfg.Layout.DefaultDuration.String()},
		{"ui", "theme", cfg.UI.Theme},
		{"log", "level", cfg.Log.Level},
		{"log", "format", cfg.Log.Format},
	}

	_, _ = fmt.Fprintln(w, styledHeading("Current configuration:"))
	section := ""
	for _, r := range rows {
		if r.section != section {
			if section != "" {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintf(w, "[%s]\n", r.section)
			section = r.section
		}
		_, _ = fmt.Fprintf(w, "  %-21s = %s\n", r.key, r.value)
	}
}

func (p *prompter) yesNo(question string) bool {
	p.printf("%s [y/N]: ", question)
	switch strings.ToLower(p.readLine()) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (p *prompter) value(label, current string) string {
	if current == "" {
		p.printf("  %s: ", label)
	} else {
		p.printf("  %s [%s]: ", label, current)
	}
	if input := p.readLine(); input != "" {
		return input
	}
	return current
}

func (p *prompter) list(label string, current []string) []string {
	input := p.value(label, strings.Join(current, ", "))
	if input == strings.Join(current, ", ") {
		return current
	}
	return splitTrimmed(input)
}

func (p *prompter) positiveFloat(label string, current float64) float64 {
	for {
		value := p.value(label, strconv.FormatFloat(current, 'g', -1, 64))
		if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
			return v
		}
		p.printf("  Invalid number %q\n", value)
	}
}

func (p *prompter) duration(label string, current config.Duration) config.Duration {
	for {
		value := p.value(label, current.String())
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return config.Duration{Duration: d}
		}
		p.printf("  Invalid duration %q (e.g. 30m, 1h)\n", value)
	}
}

func (p *prompter) theme(current string) string {
	options := strings.Join(theme.Available(), ", ")
	for {
		value := strings.ToLower(p.value("UI theme ("+options+")", current))
		if theme.IsAvailable(value) {
			return value
		}
		p.printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
