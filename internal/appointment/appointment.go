// Package appointment defines the core domain types for dayview.
package appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/javiermolinar/dayview/internal/dateutil"
)

// MaxTitleLength bounds Appointment.Title in characters.
const MaxTitleLength = 255

// Appointment is a titled time range owned by an employee.
type Appointment struct {
	ID           int64
	Title        string
	Description  string
	Start        time.Time
	End          time.Time
	Employee     *Employee // owner, nil when unassigned
	Participants []*Employee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StartTime implements layout.Interval.
func (a *Appointment) StartTime() time.Time { return a.Start }

// EndTime implements layout.Interval.
func (a *Appointment) EndTime() time.Time { return a.End }

// Duration returns the length of the appointment.
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// String renders "Title (start - end)".
func (a *Appointment) String() string {
	return fmt.Sprintf("%s (%s - %s)", a.Title,
		a.Start.UTC().Format(time.RFC3339), a.End.UTC().Format(time.RFC3339))
}

// EmployeeID returns the owner's ID, or nil if unassigned.
func (a *Appointment) EmployeeID() *int64 {
	if a.Employee == nil {
		return nil
	}
	id := a.Employee.ID
	return &id
}

// ParticipantIDs returns the IDs of all participants in order.
func (a *Appointment) ParticipantIDs() []int64 {
	ids := make([]int64, 0, len(a.Participants))
	for _, p := range a.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}

// Touches reports whether the appointment intersects the UTC calendar day of
// day. Both bounds are inclusive, so an appointment ending at midnight still
// touches the day that midnight opens.
func (a *Appointment) Touches(day time.Time) bool {
	start, end := dateutil.DayBounds(day)
	return !a.Start.After(end) && !a.End.Before(start)
}

// Validate checks the appointment's own fields.
func (a *Appointment) Validate() error {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		return fieldError("title", ErrEmptyTitle)
	}
	if utf8.RuneCountInString(a.Title) > MaxTitleLength {
		return fieldError("title", ErrTitleTooLong)
	}
	if !a.End.After(a.Start) {
		return fieldError("end_datetime", ErrEndBeforeStart)
	}
	return nil
}

// Input is a full write of an appointment. Related employees are referenced
// by ID and resolved by the repository.
type Input struct {
	Title          string
	Description    string
	Start          time.Time
	End            time.Time
	EmployeeID     *int64
	ParticipantIDs []int64
}

// New builds a validated Appointment from in. Related employees carry only
// their IDs until the repository loads them.
func New(in Input) (*Appointment, error) {
	a := &Appointment{}
	in.applyTo(a)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Replace overwrites every writable field of a with in and validates the result.
func (in Input) Replace(a *Appointment) error {
	in.applyTo(a)
	return a.Validate()
}

func (in Input) applyTo(a *Appointment) {
	a.Title = strings.TrimSpace(in.Title)
	a.Description = in.Description
	a.Start = in.Start.UTC()
	a.End = in.End.UTC()
	a.Employee = employeeRef(in.EmployeeID)
	a.Participants = employeeRefs(in.ParticipantIDs)
}

// Patch is a partial write. Nil fields are left untouched.
type Patch struct {
	Title          *string
	Description    *string
	Start          *time.Time
	End            *time.Time
	EmployeeID     *int64
	ParticipantIDs *[]int64
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Start == nil &&
		p.End == nil && p.EmployeeID == nil && p.ParticipantIDs == nil
}

// Apply writes the set fields of p onto a and validates the result.
// On error a may be partially modified.
func (p Patch) Apply(a *Appointment) error {
	if p.Title != nil {
		a.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Start != nil {
		a.Start = p.Start.UTC()
	}
	if p.End != nil {
		a.End = p.End.UTC()
	}
	if p.EmployeeID != nil {
		a.Employee = employeeRef(p.EmployeeID)
	}
	if p.ParticipantIDs != nil {
		a.Participants = employeeRefs(*p.ParticipantIDs)
	}
	return a.Validate()
}

func employeeRef(id *int64) *Employee {
	if id == nil {
		return nil
	}
	return &Employee{ID: *id}
}

func employeeRefs(ids []int64) []*Employee {
	refs := make([]*Employee, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, &Employee{ID: id})
	}
	return refs
}
