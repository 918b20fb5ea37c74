package appointment

import (
	"testing"
	"time"
)

func TestNewDay(t *testing.T) {
	day := NewDay(at(14, 30), nil)

	if day.Len() != 0 {
		t.Errorf("expected empty day, got %d appointments", day.Len())
	}
	if want := at(0, 0); !day.Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, day.Date)
	}
}

func TestNewDay_DropsOtherDays(t *testing.T) {
	other := at(9, 0).AddDate(0, 0, 2)
	day := NewDay(at(0, 0), []*Appointment{
		{ID: 1, Title: "today", Start: at(9, 0), End: at(10, 0)},
		{ID: 2, Title: "later", Start: other, End: other.Add(time.Hour)},
		nil,
	})

	if day.Len() != 1 {
		t.Fatalf("expected 1 appointment, got %d", day.Len())
	}
	if day.Find(1) == nil {
		t.Error("expected appointment 1 to be kept")
	}
}

func TestDay_SortedByStart(t *testing.T) {
	day := NewDay(at(0, 0), []*Appointment{
		{ID: 1, Title: "Second", Start: at(11, 0), End: at(12, 0)},
		{ID: 2, Title: "First", Start: at(9, 0), End: at(10, 0)},
		{ID: 3, Title: "Tie", Start: at(11, 0), End: at(11, 30)},
		{ID: 4, Title: "Third", Start: at(14, 0), End: at(15, 0)},
	})

	got := day.Appointments()
	want := []int64{2, 1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d appointments, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got ID %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestDay_Remove(t *testing.T) {
	day := NewDay(at(0, 0), []*Appointment{
		{ID: 1, Title: "a", Start: at(9, 0), End: at(10, 0)},
		{ID: 2, Title: "b", Start: at(11, 0), End: at(12, 0)},
	})

	removed := day.Remove(1)
	if removed == nil || removed.ID != 1 {
		t.Fatalf("expected to remove appointment 1, got %+v", removed)
	}
	if day.Len() != 1 {
		t.Errorf("expected 1 appointment left, got %d", day.Len())
	}
	if day.Remove(99) != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestDay_Blocks(t *testing.T) {
	day := NewDay(at(0, 0), []*Appointment{
		{ID: 1, Title: "A", Start: at(10, 0), End: at(11, 0)},
		{ID: 2, Title: "B", Start: at(10, 30), End: at(11, 30)},
		{ID: 3, Title: "C", Start: at(12, 0), End: at(13, 0)},
	})

	blocks := day.Blocks(80)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Primary.ID != 1 || blocks[0].OverlapCount() != 1 {
		t.Errorf("first block: primary %d overlap %d", blocks[0].Primary.ID, blocks[0].OverlapCount())
	}
	if blocks[0].Top != 800 || blocks[0].Height != 80 {
		t.Errorf("first block position: top %v height %v", blocks[0].Top, blocks[0].Height)
	}
	if blocks[1].Primary.ID != 3 || blocks[1].OverlapCount() != 0 {
		t.Errorf("second block: primary %d overlap %d", blocks[1].Primary.ID, blocks[1].OverlapCount())
	}
}

func TestDay_Stats(t *testing.T) {
	prev := at(0, 0).AddDate(0, 0, -1)
	day := NewDay(at(0, 0), []*Appointment{
		{ID: 1, Start: at(10, 0), End: at(11, 0)},
		{ID: 2, Start: at(10, 30), End: at(11, 30)},
		// clipped to the first 30 minutes of the day
		{ID: 3, Start: prev.Add(23 * time.Hour), End: at(0, 30)},
	})

	stats := day.Stats()
	if stats.Appointments != 3 {
		t.Errorf("got %d appointments, want 3", stats.Appointments)
	}
	if stats.BookedMinutes != 150 {
		t.Errorf("got %d booked minutes, want 150", stats.BookedMinutes)
	}
	if stats.BookedHours() != 2.5 {
		t.Errorf("got %v booked hours, want 2.5", stats.BookedHours())
	}
	if stats.OverlapGroups != 1 {
		t.Errorf("got %d overlap groups, want 1", stats.OverlapGroups)
	}
}

func TestAppointmentFilter(t *testing.T) {
	date := at(0, 0)
	f := AppointmentFilter{Date: &date}

	if !f.Match(&Appointment{Start: at(9, 0), End: at(10, 0)}) {
		t.Error("expected same-day appointment to match")
	}
	next := date.AddDate(0, 0, 1)
	if f.Match(&Appointment{Start: next.Add(time.Hour), End: next.Add(2 * time.Hour)}) {
		t.Error("expected next-day appointment not to match")
	}

	start, end, ok := f.Bounds()
	if !ok || !start.Equal(date) || !end.Equal(next.Add(-time.Microsecond)) {
		t.Errorf("unexpected bounds %v %v %v", start, end, ok)
	}
	if _, _, ok := (AppointmentFilter{}).Bounds(); ok {
		t.Error("expected zero filter to have no bounds")
	}
}
