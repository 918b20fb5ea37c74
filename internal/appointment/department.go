package appointment

import (
	"strings"
	"unicode/utf8"
)

// MaxDepartmentNameLength bounds Department.Name in characters.
const MaxDepartmentNameLength = 100

// Department groups employees under an optional manager.
type Department struct {
	ID          int64
	Name        string
	ManagerID   *int64
	Description string
}

// NewDepartment creates a validated Department.
func NewDepartment(name, description string, managerID *int64) (*Department, error) {
	d := &Department{
		Name:        strings.TrimSpace(name),
		Description: description,
		ManagerID:   managerID,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the department's own fields. The manager's position is
// checked by ValidateManager once the employee is loaded.
func (d *Department) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fieldError("name", ErrEmptyName)
	}
	if utf8.RuneCountInString(d.Name) > MaxDepartmentNameLength {
		return fieldError("name", ErrNameTooLong)
	}
	return nil
}

// ValidateManager checks that manager may run the department.
func (d *Department) ValidateManager(manager *Employee) error {
	if manager == nil {
		return nil
	}
	if !manager.IsManager() {
		return fieldError("manager", ErrNotManager)
	}
	return nil
}

func (d *Department) String() string {
	return d.Name
}
