package integration

import (
	"context"
	"testing"
	"time"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/dateutil"
)

// Days are UTC calendar days no matter which offset an appointment was
// written with or which zone the process runs in.
func TestOffsetsAreLaidOutInUTC(t *testing.T) {
	saved := time.Local
	time.Local = time.FixedZone("UTC-10", -10*60*60)
	t.Cleanup(func() { time.Local = saved })

	store := openStore(t)
	ctx := context.Background()

	west := time.FixedZone("UTC-2", -2*60*60)
	east := time.FixedZone("UTC+9", 9*60*60)

	// 23:30 on the 7th at -02:00 is 01:30 on the 8th in UTC.
	late, err := appointment.New(appointment.Input{
		Title: "Late sync",
		Start: time.Date(2025, 6, 7, 23, 30, 0, 0, west),
		End:   time.Date(2025, 6, 8, 0, 30, 0, 0, west),
	})
	if err != nil {
		t.Fatalf("building appointment: %v", err)
	}
	if err := store.CreateAppointment(ctx, late); err != nil {
		t.Fatalf("creating appointment: %v", err)
	}

	// 08:00 on the 8th at +09:00 is 23:00 on the 7th in UTC.
	early, err := appointment.New(appointment.Input{
		Title: "Early sync",
		Start: time.Date(2025, 6, 8, 8, 0, 0, 0, east),
		End:   time.Date(2025, 6, 8, 8, 45, 0, 0, east),
	})
	if err != nil {
		t.Fatalf("building appointment: %v", err)
	}
	if err := store.CreateAppointment(ctx, early); err != nil {
		t.Fatalf("creating appointment: %v", err)
	}

	got, err := store.GetAppointment(ctx, late.ID)
	if err != nil {
		t.Fatalf("getting appointment: %v", err)
	}
	if got.Start.Location() != time.UTC || !got.Start.Equal(time.Date(2025, 6, 8, 1, 30, 0, 0, time.UTC)) {
		t.Errorf("expected start stored as 01:30 UTC, got %v", got.Start)
	}

	s := newServer(store)

	seventh := getDayView(t, s, "date=2025-06-07&hour_height=60")
	if len(seventh.Blocks) != 1 || seventh.Blocks[0].Appointment.Title != "Early sync" || seventh.Blocks[0].Top != 1380 {
		t.Errorf("expected Early sync at 23:00 on the 7th, got %+v", seventh.Blocks)
	}

	eighth := getDayView(t, s, "date=2025-06-08&hour_height=60")
	if len(eighth.Blocks) != 1 || eighth.Blocks[0].Appointment.Title != "Late sync" || eighth.Blocks[0].Top != 90 {
		t.Errorf("expected Late sync at 01:30 on the 8th, got %+v", eighth.Blocks)
	}

	// Day math ignores the process zone.
	day := dateutil.TruncateToDay(time.Date(2025, 6, 7, 20, 0, 0, 0, time.Local))
	if !day.Equal(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected 20:00 at -10:00 to fall on the 8th in UTC, got %v", day)
	}
}
