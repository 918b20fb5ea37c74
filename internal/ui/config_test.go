package ui

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/dayview/internal/config"
)

func newPrompter(input string) (*prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return &prompter{in: bufio.NewReader(strings.NewReader(input)), out: &out}, &out
}

func TestEditConfig_CreatesDefaults(t *testing.T) {
	setColor(false)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	p, out := newPrompter("n\n")

	if err := p.editConfig(path); err != nil {
		t.Fatalf("editConfig: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
	for _, want := range []string{"Created " + path, "[server]", "[layout]", "hour_height", "Would you like to edit"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEditConfig_SavesAnswers(t *testing.T) {
	setColor(false)
	path := filepath.Join(t.TempDir(), "config.toml")
	answers := []string{
		"y",
		"0.0.0.0:9000",
		"http://a.test, http://b.test",
		"",          // db path
		"abc", "60", // hour height, retried
		"",          // default start
		"45m",       // default duration
		"solarized", "latte",
		"", // log level
	}
	p, out := newPrompter(strings.Join(answers, "\n") + "\n")

	if err := p.editConfig(path); err != nil {
		t.Fatalf("editConfig: %v", err)
	}
	if !strings.Contains(out.String(), `Invalid number "abc"`) || !strings.Contains(out.String(), `Invalid theme "solarized"`) {
		t.Errorf("expected invalid answers to be reported, got:\n%s", out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	def := config.Default()
	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if !slices.Equal(cfg.Server.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Layout.HourHeight != 60 {
		t.Errorf("HourHeight = %v", cfg.Layout.HourHeight)
	}
	if cfg.Layout.DefaultStart != def.Layout.DefaultStart {
		t.Errorf("DefaultStart = %q, want unchanged %q", cfg.Layout.DefaultStart, def.Layout.DefaultStart)
	}
	if cfg.Layout.DefaultDuration.Duration != 45*time.Minute {
		t.Errorf("DefaultDuration = %v", cfg.Layout.DefaultDuration)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
}

func TestPrompter_KeepsValuesAfterEOF(t *testing.T) {
	p, _ := newPrompter("")
	if got := p.value("Addr", "127.0.0.1:8000"); got != "127.0.0.1:8000" {
		t.Errorf("expected current value, got %q", got)
	}
	if p.yesNo("Edit?") {
		t.Error("expected no on empty input")
	}
	if got := p.list("Origins", []string{"*"}); !slices.Equal(got, []string{"*"}) {
		t.Errorf("expected current list, got %v", got)
	}
}
