package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/javiermolinar/dayview/internal/appointment"
)

// employeeColumns selects an employee with its department; both sides of the
// join may be NULL when used from an appointment's owner.
const employeeColumns = `
	e.id, e.name, e.email, e.position,
	d.id, d.name, d.manager_id, d.description`

const employeeFrom = `
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id`

// employeeRow holds the nullable scan targets for employeeColumns.
type employeeRow struct {
	id       sql.NullInt64
	name     sql.NullString
	email    sql.NullString
	position sql.NullString

	deptID          sql.NullInt64
	deptName        sql.NullString
	deptManagerID   sql.NullInt64
	deptDescription sql.NullString
}

func (r *employeeRow) targets() []any {
	return []any{
		&r.id, &r.name, &r.email, &r.position,
		&r.deptID, &r.deptName, &r.deptManagerID, &r.deptDescription,
	}
}

// employee builds the scanned employee, or nil if the join found none.
func (r *employeeRow) employee() *appointment.Employee {
	if !r.id.Valid {
		return nil
	}
	e := &appointment.Employee{
		ID:       r.id.Int64,
		Name:     r.name.String,
		Email:    r.email.String,
		Position: appointment.Position(r.position.String),
	}
	if r.deptID.Valid {
		e.Department = &appointment.Department{
			ID:          r.deptID.Int64,
			Name:        r.deptName.String,
			Description: r.deptDescription.String,
		}
		if r.deptManagerID.Valid {
			id := r.deptManagerID.Int64
			e.Department.ManagerID = &id
		}
	}
	return e
}

// CreateEmployee adds a new employee.
// Returns ErrDuplicateEmail if the email is taken.
func (s *SQLite) CreateEmployee(ctx context.Context, e *appointment.Employee) error {
	if err := e.Validate(); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkDepartment(ctx, tx, e.DepartmentID()); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO employees (name, email, position, department_id) VALUES (?, ?, ?, ?)`,
			e.Name, e.Email, e.Position, nullableID(e.DepartmentID()),
		)
		if isUniqueViolation(err, "employees.email") {
			return &appointment.FieldError{Field: "email", Err: appointment.ErrDuplicateEmail}
		}
		if err != nil {
			return fmt.Errorf("inserting employee: %w", err)
		}

		e.ID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.reloadEmployee(ctx, e)
}

// GetEmployee retrieves an employee by ID.
func (s *SQLite) GetEmployee(ctx context.Context, id int64) (*appointment.Employee, error) {
	return getEmployee(ctx, s.db, id)
}

func getEmployee(ctx context.Context, q querier, id int64) (*appointment.Employee, error) {
	query := `SELECT ` + employeeColumns + employeeFrom + ` WHERE e.id = ?`

	var row employeeRow
	err := q.QueryRowContext(ctx, query, id).Scan(row.targets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("employee", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying employee: %w", err)
	}
	return row.employee(), nil
}

// ListEmployees returns employees matching f, ordered by ID.
func (s *SQLite) ListEmployees(ctx context.Context, f appointment.EmployeeFilter) ([]*appointment.Employee, error) {
	query := `SELECT ` + employeeColumns + employeeFrom + ` WHERE 1 = 1`
	var args []any

	// instr over lower() keeps the match a plain substring, no LIKE wildcards.
	if f.Name != "" {
		query += ` AND instr(lower(e.name), lower(?)) > 0`
		args = append(args, f.Name)
	}
	if f.Email != "" {
		query += ` AND instr(lower(e.email), lower(?)) > 0`
		args = append(args, f.Email)
	}
	query += ` ORDER BY e.id`

	return queryEmployees(ctx, s.db, query, args...)
}

// ListDepartmentEmployees returns the employees of one department.
func (s *SQLite) ListDepartmentEmployees(ctx context.Context, departmentID int64) ([]*appointment.Employee, error) {
	ok, err := exists(ctx, s.db, "departments", departmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("department", departmentID)
	}

	query := `SELECT ` + employeeColumns + employeeFrom + ` WHERE e.department_id = ? ORDER BY e.id`
	return queryEmployees(ctx, s.db, query, departmentID)
}

func queryEmployees(ctx context.Context, q querier, query string, args ...any) ([]*appointment.Employee, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	employees := make([]*appointment.Employee, 0)
	for rows.Next() {
		var row employeeRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		employees = append(employees, row.employee())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee rewrites an employee's fields.
func (s *SQLite) UpdateEmployee(ctx context.Context, e *appointment.Employee) error {
	if err := e.Validate(); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkDepartment(ctx, tx, e.DepartmentID()); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE employees SET name = ?, email = ?, position = ?, department_id = ? WHERE id = ?`,
			e.Name, e.Email, e.Position, nullableID(e.DepartmentID()), e.ID,
		)
		if isUniqueViolation(err, "employees.email") {
			return &appointment.FieldError{Field: "email", Err: appointment.ErrDuplicateEmail}
		}
		if err != nil {
			return fmt.Errorf("updating employee: %w", err)
		}
		return checkAffected(result, "employee", e.ID)
	})
	if err != nil {
		return err
	}

	return s.reloadEmployee(ctx, e)
}

// DeleteEmployee removes an employee. Owned appointments and participant
// rows cascade; managed departments lose their manager.
func (s *SQLite) DeleteEmployee(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return checkAffected(result, "employee", id)
}

func (s *SQLite) reloadEmployee(ctx context.Context, e *appointment.Employee) error {
	fresh, err := s.GetEmployee(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = *fresh
	return nil
}

func checkDepartment(ctx context.Context, q querier, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := exists(ctx, q, "departments", *id)
	if err != nil {
		return err
	}
	if !ok {
		return relatedNotFound("department", "department", *id)
	}
	return nil
}
