package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/javiermolinar/dayview/internal/appointment"
)

const departmentColumns = `id, name, manager_id, description`

// CreateDepartment adds a new department. A manager, if set, is moved into
// the department in the same transaction.
func (s *SQLite) CreateDepartment(ctx context.Context, d *appointment.Department) error {
	if err := d.Validate(); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkManager(ctx, tx, d); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO departments (name, manager_id, description) VALUES (?, ?, ?)`,
			d.Name, nullableID(d.ManagerID), d.Description,
		)
		if err != nil {
			return departmentWriteError(err)
		}

		d.ID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}

		return assignManager(ctx, tx, d)
	})
}

// GetDepartment retrieves a department by ID.
func (s *SQLite) GetDepartment(ctx context.Context, id int64) (*appointment.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = ?`

	d, err := scanDepartment(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("department", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying department: %w", err)
	}
	return d, nil
}

// ListDepartments returns all departments ordered by ID.
func (s *SQLite) ListDepartments(ctx context.Context) ([]*appointment.Department, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying departments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	departments := make([]*appointment.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating departments: %w", err)
	}
	return departments, nil
}

// UpdateDepartment rewrites a department. A manager, if set, is moved into
// the department in the same transaction.
func (s *SQLite) UpdateDepartment(ctx context.Context, d *appointment.Department) error {
	if err := d.Validate(); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkManager(ctx, tx, d); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE departments SET name = ?, manager_id = ?, description = ? WHERE id = ?`,
			d.Name, nullableID(d.ManagerID), d.Description, d.ID,
		)
		if err != nil {
			return departmentWriteError(err)
		}
		if err := checkAffected(result, "department", d.ID); err != nil {
			return err
		}

		return assignManager(ctx, tx, d)
	})
}

// DeleteDepartment removes a department. Its employees become unassigned.
func (s *SQLite) DeleteDepartment(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM departments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}
	return checkAffected(result, "department", id)
}

func scanDepartment(row scanner) (*appointment.Department, error) {
	var (
		d         appointment.Department
		managerID sql.NullInt64
	)
	if err := row.Scan(&d.ID, &d.Name, &managerID, &d.Description); err != nil {
		return nil, err
	}
	if managerID.Valid {
		d.ManagerID = &managerID.Int64
	}
	return &d, nil
}

// checkManager loads the department's manager and validates the role.
func checkManager(ctx context.Context, q querier, d *appointment.Department) error {
	if d.ManagerID == nil {
		return nil
	}
	manager, err := getEmployee(ctx, q, *d.ManagerID)
	if errors.Is(err, appointment.ErrNotFound) {
		return relatedNotFound("manager", "employee", *d.ManagerID)
	}
	if err != nil {
		return err
	}
	return d.ValidateManager(manager)
}

// assignManager moves the manager into the department.
func assignManager(ctx context.Context, q querier, d *appointment.Department) error {
	if d.ManagerID == nil {
		return nil
	}
	_, err := q.ExecContext(ctx, `UPDATE employees SET department_id = ? WHERE id = ?`, d.ID, *d.ManagerID)
	if err != nil {
		return fmt.Errorf("moving manager into department: %w", err)
	}
	return nil
}

func departmentWriteError(err error) error {
	switch {
	case isUniqueViolation(err, "departments.name"):
		return &appointment.FieldError{Field: "name", Err: appointment.ErrDuplicateDepartment}
	case isUniqueViolation(err, "departments.manager_id"):
		return &appointment.FieldError{Field: "manager", Err: appointment.ErrAlreadyManages}
	default:
		return fmt.Errorf("writing department: %w", err)
	}
}
