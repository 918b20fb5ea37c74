package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// newTestRepo creates a temporary SQLite repository for testing.
func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 2; i++ {
		repo, err := New(dbPath)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		if err := repo.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
}

func TestNew_ForeignKeysEnabled(t *testing.T) {
	repo := newTestRepo(t)

	var enabled int
	if err := repo.db.QueryRowContext(context.Background(), `PRAGMA foreign_keys`).Scan(&enabled); err != nil {
		t.Fatalf("querying pragma: %v", err)
	}
	if enabled != 1 {
		t.Errorf("expected foreign_keys=1, got %d", enabled)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	in := time.Date(2025, 6, 7, 10, 15, 30, 123456000, time.FixedZone("UTC+2", 2*60*60))

	s := formatTime(in)
	if s != "2025-06-07T08:15:30.123456Z" {
		t.Errorf("got %q", s)
	}

	out, err := parseTime(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("got %v, want %v", out, in)
	}
	if out.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", out.Location())
	}
}

func TestParseTime_Invalid(t *testing.T) {
	if _, err := parseTime("yesterday"); err == nil {
		t.Error("expected error")
	}
}
