package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/dayview/internal/appointment"
)

type fakeRepo struct {
	list    func(f appointment.AppointmentFilter) ([]*appointment.Appointment, error)
	stored  map[int64]*appointment.Appointment
	nextID  int64
	deleted []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[int64]*appointment.Appointment{}, nextID: 1}
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, a *appointment.Appointment) error {
	a.ID = f.nextID
	f.nextID++
	f.stored[a.ID] = a
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id int64) (*appointment.Appointment, error) {
	a, ok := f.stored[id]
	if !ok {
		return nil, appointment.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) ListAppointments(ctx context.Context, filter appointment.AppointmentFilter) ([]*appointment.Appointment, error) {
	if f.list == nil {
		return nil, errors.New("not implemented")
	}
	return f.list(filter)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, a *appointment.Appointment) error {
	if _, ok := f.stored[a.ID]; !ok {
		return appointment.ErrNotFound
	}
	f.stored[a.ID] = a
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id int64) error {
	if _, ok := f.stored[id]; !ok {
		return appointment.ErrNotFound
	}
	delete(f.stored, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) ClosestAppointment(ctx context.Context, now time.Time) (*appointment.Appointment, error) {
	return nil, errors.New("not implemented")
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 7, hour, minute, 0, 0, time.UTC)
}

func TestLoadDayReturnsDayLoadedMsg(t *testing.T) {
	date := at(0, 0)
	var gotFilter appointment.AppointmentFilter

	repo := newFakeRepo()
	repo.list = func(f appointment.AppointmentFilter) ([]*appointment.Appointment, error) {
		gotFilter = f
		return []*appointment.Appointment{
			{ID: 2, Title: "Later", Start: at(11, 0), End: at(12, 0)},
			{ID: 1, Title: "Standup", Start: at(9, 0), End: at(9, 15)},
			{ID: 3, Title: "Tomorrow", Start: at(0, 0).AddDate(0, 0, 1), End: at(1, 0).AddDate(0, 0, 1)},
		}, nil
	}

	msg := LoadDay(repo, date)()

	loaded, ok := msg.(DayLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want DayLoadedMsg", msg)
	}
	if gotFilter.Date == nil || !gotFilter.Date.Equal(date) {
		t.Fatalf("filter date = %v, want %v", gotFilter.Date, date)
	}
	appts := loaded.Day.Appointments()
	if len(appts) != 2 {
		t.Fatalf("appointments = %d, want 2", len(appts))
	}
	if appts[0].Title != "Standup" {
		t.Fatalf("first appointment = %q, want Standup", appts[0].Title)
	}
}

func TestLoadDayReturnsErrMsg(t *testing.T) {
	repo := newFakeRepo()
	repo.list = func(appointment.AppointmentFilter) ([]*appointment.Appointment, error) {
		return nil, errors.New("disk gone")
	}

	msg := LoadDay(repo, at(0, 0))()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()

	msg := Create(repo, appointment.Input{Title: "Review", Start: at(10, 0), End: at(11, 0)})()
	saved, ok := msg.(SavedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SavedMsg", msg)
	}
	if !saved.Created || saved.Appointment.ID != 1 {
		t.Fatalf("saved = %+v", saved)
	}

	msg = Create(repo, appointment.Input{Title: "Backwards", Start: at(11, 0), End: at(10, 0)})()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, appointment.ErrEndBeforeStart) {
		t.Fatalf("err = %v, want ErrEndBeforeStart", errMsg.Err)
	}
}

func TestUpdate(t *testing.T) {
	repo := newFakeRepo()
	Create(repo, appointment.Input{Title: "Review", Start: at(10, 0), End: at(11, 0)})()

	title := "Design review"
	end := at(11, 30)
	msg := Update(repo, 1, appointment.Patch{Title: &title, End: &end})()
	saved, ok := msg.(SavedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SavedMsg", msg)
	}
	if saved.Created {
		t.Fatal("update reported as created")
	}
	if repo.stored[1].Title != title || !repo.stored[1].End.Equal(end) {
		t.Fatalf("stored = %+v", repo.stored[1])
	}

	msg = Update(repo, 42, appointment.Patch{Title: &title})()
	if errMsg, ok := msg.(ErrMsg); !ok || !errors.Is(errMsg.Err, appointment.ErrNotFound) {
		t.Fatalf("msg = %#v, want not found ErrMsg", msg)
	}
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	Create(repo, appointment.Input{Title: "Review", Start: at(10, 0), End: at(11, 0)})()

	msg := Delete(repo, &appointment.Appointment{ID: 1, Title: "Review"})()
	deleted, ok := msg.(DeletedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want DeletedMsg", msg)
	}
	if deleted.ID != 1 || deleted.Title != "Review" {
		t.Fatalf("deleted = %+v", deleted)
	}
	if len(repo.stored) != 0 {
		t.Fatalf("stored = %d, want 0", len(repo.stored))
	}
}
