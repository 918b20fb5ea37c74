package appointment

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Position is an employee's role.
type Position string

const (
	PositionEmployee Position = "employee"
	PositionManager  Position = "manager"
)

// ParsePosition validates s. An empty string means PositionEmployee.
func ParsePosition(s string) (Position, error) {
	switch Position(strings.ToLower(strings.TrimSpace(s))) {
	case "", PositionEmployee:
		return PositionEmployee, nil
	case PositionManager:
		return PositionManager, nil
	default:
		return "", ErrInvalidPosition
	}
}

// MaxEmployeeNameLength bounds Employee.Name in characters.
const MaxEmployeeNameLength = 255

// Employee is a person who owns or attends appointments.
type Employee struct {
	ID         int64
	Name       string
	Email      string
	Position   Position
	Department *Department // nil when unassigned
}

// NewEmployee creates a validated Employee.
func NewEmployee(name, email, position string) (*Employee, error) {
	pos, err := ParsePosition(position)
	if err != nil {
		return nil, fieldError("position", err)
	}
	e := &Employee{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Position: pos,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks name, email and position.
func (e *Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fieldError("name", ErrEmptyName)
	}
	if utf8.RuneCountInString(e.Name) > MaxEmployeeNameLength {
		return fieldError("name", ErrNameTooLong)
	}
	if err := validateEmail(e.Email); err != nil {
		return fieldError("email", err)
	}
	if _, err := ParsePosition(string(e.Position)); err != nil {
		return fieldError("position", err)
	}
	return nil
}

// IsManager reports whether the employee holds the manager position.
func (e *Employee) IsManager() bool {
	return e.Position == PositionManager
}

// DepartmentID returns the department's ID, or nil if unassigned.
func (e *Employee) DepartmentID() *int64 {
	if e.Department == nil {
		return nil
	}
	id := e.Department.ID
	return &id
}

// String renders "Name (position)".
func (e *Employee) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Position)
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	if !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}
