package appointment

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 7, hour, minute, 0, 0, time.UTC)
}

func int64p(v int64) *int64 { return &v }

func TestNew(t *testing.T) {
	t.Run("valid appointment", func(t *testing.T) {
		a, err := New(Input{
			Title:          "  Standup ",
			Start:          at(9, 0),
			End:            at(9, 15),
			EmployeeID:     int64p(3),
			ParticipantIDs: []int64{4, 5, 4},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Title != "Standup" {
			t.Errorf("got title %q, want %q", a.Title, "Standup")
		}
		if a.Employee == nil || a.Employee.ID != 3 {
			t.Errorf("got employee %+v, want ID 3", a.Employee)
		}
		if got := a.ParticipantIDs(); len(got) != 2 || got[0] != 4 || got[1] != 5 {
			t.Errorf("got participants %v, want [4 5]", got)
		}
		if a.Duration() != 15*time.Minute {
			t.Errorf("got duration %v, want 15m", a.Duration())
		}
	})

	t.Run("times converted to UTC", func(t *testing.T) {
		zone := time.FixedZone("UTC+2", 2*60*60)
		a, err := New(Input{
			Title: "Call",
			Start: time.Date(2025, 6, 7, 12, 0, 0, 0, zone),
			End:   time.Date(2025, 6, 7, 13, 0, 0, 0, zone),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Start.Location() != time.UTC || a.Start.Hour() != 10 {
			t.Errorf("got start %v, want 10:00 UTC", a.Start)
		}
		if a.EmployeeID() != nil {
			t.Errorf("expected no employee, got %v", *a.EmployeeID())
		}
	})
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantErr   error
		wantField string
	}{
		{"empty title", Input{Title: "  ", Start: at(9, 0), End: at(10, 0)}, ErrEmptyTitle, "title"},
		{"title too long", Input{Title: strings.Repeat("x", 256), Start: at(9, 0), End: at(10, 0)}, ErrTitleTooLong, "title"},
		{"end before start", Input{Title: "x", Start: at(10, 0), End: at(9, 0)}, ErrEndBeforeStart, "end_datetime"},
		{"end equals start", Input{Title: "x", Start: at(10, 0), End: at(10, 0)}, ErrEndBeforeStart, "end_datetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldError, got %T", err)
			}
			if fe.Field != tt.wantField {
				t.Errorf("got field %q, want %q", fe.Field, tt.wantField)
			}
		})
	}
}

func TestAppointment_String(t *testing.T) {
	a := &Appointment{Title: "Review", Start: at(10, 0), End: at(11, 30)}
	want := "Review (2025-06-07T10:00:00Z - 2025-06-07T11:30:00Z)"
	if got := a.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppointment_Touches(t *testing.T) {
	day := at(0, 0)
	prev := day.AddDate(0, 0, -1)
	next := day.AddDate(0, 0, 1)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside", at(9, 0), at(10, 0), true},
		{"from previous day", prev.Add(22 * time.Hour), at(1, 0), true},
		{"into next day", at(23, 0), next.Add(time.Hour), true},
		{"spans the whole day", prev, next.Add(time.Hour), true},
		{"ends exactly at midnight opening the day", prev.Add(23 * time.Hour), day, true},
		{"starts exactly at next midnight", next, next.Add(time.Hour), false},
		{"entirely previous day", prev.Add(9 * time.Hour), prev.Add(10 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Start: tt.start, End: tt.end}
			if got := a.Touches(day); got != tt.want {
				t.Errorf("Touches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInput_Replace(t *testing.T) {
	a := &Appointment{ID: 7, Title: "Old", Description: "d", Start: at(8, 0), End: at(9, 0), Employee: &Employee{ID: 1}}

	err := Input{Title: "New", Start: at(10, 0), End: at(11, 0)}.Replace(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 7 {
		t.Errorf("ID changed to %d", a.ID)
	}
	if a.Description != "" {
		t.Errorf("expected description cleared, got %q", a.Description)
	}
	if a.Employee != nil {
		t.Errorf("expected employee cleared, got %+v", a.Employee)
	}
}

func TestPatch_Apply(t *testing.T) {
	base := func() *Appointment {
		return &Appointment{Title: "Old", Description: "keep", Start: at(8, 0), End: at(9, 0), Employee: &Employee{ID: 1}}
	}

	t.Run("only set fields change", func(t *testing.T) {
		a := base()
		title := "New"
		if err := (Patch{Title: &title}).Apply(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Title != "New" || a.Description != "keep" || a.Employee.ID != 1 {
			t.Errorf("unexpected result %+v", a)
		}
	})

	t.Run("participants replaced", func(t *testing.T) {
		a := base()
		ids := []int64{2, 3}
		if err := (Patch{ParticipantIDs: &ids}).Apply(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(a.Participants) != 2 {
			t.Errorf("got %d participants, want 2", len(a.Participants))
		}
	})

	t.Run("end before start rejected", func(t *testing.T) {
		a := base()
		end := at(7, 0)
		if err := (Patch{End: &end}).Apply(a); !errors.Is(err, ErrEndBeforeStart) {
			t.Errorf("got error %v, want %v", err, ErrEndBeforeStart)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		if !(Patch{}).IsEmpty() {
			t.Error("expected zero patch to be empty")
		}
		title := "x"
		if (Patch{Title: &title}).IsEmpty() {
			t.Error("expected patch with title to be non-empty")
		}
	})
}
