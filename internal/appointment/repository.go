package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/javiermolinar/dayview/internal/dateutil"
)

// AppointmentFilter narrows ListAppointments. The zero value matches all.
type AppointmentFilter struct {
	// Date keeps appointments touching this UTC calendar day.
	Date *time.Time
}

// Match reports whether a passes the filter.
func (f AppointmentFilter) Match(a *Appointment) bool {
	if f.Date != nil && !a.Touches(*f.Date) {
		return false
	}
	return true
}

// Bounds returns the inclusive UTC day window for Date. ok is false when no
// date is set.
func (f AppointmentFilter) Bounds() (start, end time.Time, ok bool) {
	if f.Date == nil {
		return time.Time{}, time.Time{}, false
	}
	start, end = dateutil.DayBounds(*f.Date)
	return start, end, true
}

// EmployeeFilter narrows ListEmployees by case-insensitive substring.
type EmployeeFilter struct {
	Name  string
	Email string
}

// Match reports whether e passes the filter.
func (f EmployeeFilter) Match(e *Employee) bool {
	if f.Name != "" && !containsFold(e.Name, f.Name) {
		return false
	}
	if f.Email != "" && !containsFold(e.Email, f.Email) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// AppointmentRepository stores appointments. Get, Update and Delete return
// an error wrapping ErrNotFound for unknown IDs.
type AppointmentRepository interface {
	// CreateAppointment inserts a and its participants, then reloads it with
	// related employees resolved.
	CreateAppointment(ctx context.Context, a *Appointment) error

	// GetAppointment retrieves an appointment by ID.
	GetAppointment(ctx context.Context, id int64) (*Appointment, error)

	// ListAppointments returns matching appointments ordered by start.
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]*Appointment, error)

	// UpdateAppointment rewrites a and replaces its participants atomically.
	UpdateAppointment(ctx context.Context, a *Appointment) error

	// DeleteAppointment removes an appointment.
	DeleteAppointment(ctx context.Context, id int64) error

	// ClosestAppointment returns the earliest-starting appointment that has
	// not ended by now. Returns ErrNoUpcoming if there is none.
	ClosestAppointment(ctx context.Context, now time.Time) (*Appointment, error)
}

// EmployeeRepository stores employees.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, e *Employee) error
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	ListEmployees(ctx context.Context, f EmployeeFilter) ([]*Employee, error)
	ListDepartmentEmployees(ctx context.Context, departmentID int64) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, e *Employee) error

	// DeleteEmployee removes an employee together with the appointments they
	// own. Departments they manage lose their manager.
	DeleteEmployee(ctx context.Context, id int64) error
}

// DepartmentRepository stores departments.
type DepartmentRepository interface {
	// CreateDepartment inserts d. A manager is moved into the department.
	CreateDepartment(ctx context.Context, d *Department) error
	GetDepartment(ctx context.Context, id int64) (*Department, error)
	ListDepartments(ctx context.Context) ([]*Department, error)
	UpdateDepartment(ctx context.Context, d *Department) error

	// DeleteDepartment removes a department. Its employees become unassigned.
	DeleteDepartment(ctx context.Context, id int64) error
}

// Store aggregates every repository over one backing database.
type Store interface {
	AppointmentRepository
	EmployeeRepository
	DepartmentRepository

	// Close releases any resources held by the store.
	Close() error
}
