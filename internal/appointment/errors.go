package appointment

import "errors"

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrTitleTooLong    = errors.New("title must be at most 255 characters")
	ErrEndBeforeStart  = errors.New("end must be after start")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name is too long")
	ErrEmailRequired   = errors.New("email is mandatory")
	ErrInvalidEmail    = errors.New("enter a valid email address")
	ErrInvalidPosition = errors.New("position must be 'employee' or 'manager'")
	ErrNotManager      = errors.New("the chosen employee is not a manager")
)

// Domain errors.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateEmail      = errors.New("employee with this email already exists")
	ErrDuplicateDepartment = errors.New("department with this name already exists")
	ErrAlreadyManages      = errors.New("employee already manages another department")
	ErrNoUpcoming          = errors.New("no future appointments found")
)

// FieldError ties a validation error to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
