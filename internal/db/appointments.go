package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/dayview/internal/appointment"
)

const appointmentColumns = `
	a.id, a.title, a.description, a.start_datetime, a.end_datetime, a.created_at, a.updated_at,` +
	employeeColumns

const appointmentFrom = `
	FROM appointments a
	LEFT JOIN employees e ON e.id = a.employee_id
	LEFT JOIN departments d ON d.id = e.department_id`

// CreateAppointment inserts a and its participants, then reloads it with
// related employees resolved.
func (s *SQLite) CreateAppointment(ctx context.Context, a *appointment.Appointment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	now := formatTime(s.now())
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkRelated(ctx, tx, a); err != nil {
			return err
		}

		query := `
			INSERT INTO appointments (
				title, description, start_datetime, end_datetime, employee_id, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		result, err := tx.ExecContext(ctx, query,
			a.Title,
			a.Description,
			formatTime(a.Start),
			formatTime(a.End),
			nullableID(a.EmployeeID()),
			now,
			now,
		)
		if err != nil {
			return fmt.Errorf("inserting appointment: %w", err)
		}

		a.ID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}

		return insertParticipants(ctx, tx, a.ID, a.ParticipantIDs())
	})
	if err != nil {
		return err
	}

	return s.reloadAppointment(ctx, a)
}

// GetAppointment retrieves an appointment by ID.
func (s *SQLite) GetAppointment(ctx context.Context, id int64) (*appointment.Appointment, error) {
	appts, err := s.queryAppointments(ctx, `WHERE a.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(appts) == 0 {
		return nil, notFound("appointment", id)
	}
	return appts[0], nil
}

// ListAppointments returns matching appointments ordered by start.
func (s *SQLite) ListAppointments(ctx context.Context, f appointment.AppointmentFilter) ([]*appointment.Appointment, error) {
	start, end, ok := f.Bounds()
	if !ok {
		return s.queryAppointments(ctx, `ORDER BY a.start_datetime, a.id`)
	}
	return s.queryAppointments(ctx,
		`WHERE a.start_datetime <= ? AND a.end_datetime >= ? ORDER BY a.start_datetime, a.id`,
		formatTime(end), formatTime(start),
	)
}

// ClosestAppointment returns the earliest-starting appointment whose end is
// not before now. Returns ErrNoUpcoming if there is none.
func (s *SQLite) ClosestAppointment(ctx context.Context, now time.Time) (*appointment.Appointment, error) {
	appts, err := s.queryAppointments(ctx,
		`WHERE a.end_datetime >= ? ORDER BY a.start_datetime, a.id LIMIT 1`,
		formatTime(now),
	)
	if err != nil {
		return nil, err
	}
	if len(appts) == 0 {
		return nil, appointment.ErrNoUpcoming
	}
	return appts[0], nil
}

// UpdateAppointment rewrites a and replaces its participants atomically.
func (s *SQLite) UpdateAppointment(ctx context.Context, a *appointment.Appointment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkRelated(ctx, tx, a); err != nil {
			return err
		}

		query := `
			UPDATE appointments
			SET title = ?, description = ?, start_datetime = ?, end_datetime = ?, employee_id = ?, updated_at = ?
			WHERE id = ?
		`
		result, err := tx.ExecContext(ctx, query,
			a.Title,
			a.Description,
			formatTime(a.Start),
			formatTime(a.End),
			nullableID(a.EmployeeID()),
			formatTime(s.now()),
			a.ID,
		)
		if err != nil {
			return fmt.Errorf("updating appointment: %w", err)
		}
		if err := checkAffected(result, "appointment", a.ID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM appointment_participants WHERE appointment_id = ?`, a.ID); err != nil {
			return fmt.Errorf("clearing participants: %w", err)
		}
		return insertParticipants(ctx, tx, a.ID, a.ParticipantIDs())
	})
	if err != nil {
		return err
	}

	return s.reloadAppointment(ctx, a)
}

// DeleteAppointment removes an appointment and its participant rows.
func (s *SQLite) DeleteAppointment(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}
	return checkAffected(result, "appointment", id)
}

func (s *SQLite) reloadAppointment(ctx context.Context, a *appointment.Appointment) error {
	fresh, err := s.GetAppointment(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = *fresh
	return nil
}

// queryAppointments runs a SELECT with the given tail clause and attaches
// participants. Rows are fully drained before the participant query runs.
func (s *SQLite) queryAppointments(ctx context.Context, tail string, args ...any) ([]*appointment.Appointment, error) {
	appts, err := scanAppointments(ctx, s.db, `SELECT `+appointmentColumns+appointmentFrom+` `+tail, args...)
	if err != nil {
		return nil, err
	}
	if err := loadParticipants(ctx, s.db, appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func scanAppointments(ctx context.Context, q querier, query string, args ...any) ([]*appointment.Appointment, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying appointments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	appts := make([]*appointment.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointments: %w", err)
	}
	return appts, nil
}

func scanAppointment(row scanner) (*appointment.Appointment, error) {
	var (
		a         appointment.Appointment
		start     string
		end       string
		createdAt sql.NullString
		updatedAt string
		owner     employeeRow
	)

	dest := append([]any{&a.ID, &a.Title, &a.Description, &start, &end, &createdAt, &updatedAt}, owner.targets()...)
	if err := row.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning appointment: %w", err)
	}

	var err error
	if a.Start, err = parseTime(start); err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	if a.End, err = parseTime(end); err != nil {
		return nil, fmt.Errorf("parsing end: %w", err)
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}
	if createdAt.Valid {
		if a.CreatedAt, err = parseTime(createdAt.String); err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
	}

	a.Employee = owner.employee()
	a.Participants = make([]*appointment.Employee, 0)
	return &a, nil
}

// loadParticipants fills Participants for every appointment in one query.
func loadParticipants(ctx context.Context, q querier, appts []*appointment.Appointment) error {
	if len(appts) == 0 {
		return nil
	}

	byID := make(map[int64]*appointment.Appointment, len(appts))
	args := make([]any, 0, len(appts))
	for _, a := range appts {
		byID[a.ID] = a
		args = append(args, a.ID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")

	query := `
		SELECT p.appointment_id,` + employeeColumns + `
		FROM appointment_participants p
		JOIN employees e ON e.id = p.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE p.appointment_id IN (` + placeholders + `)
		ORDER BY p.appointment_id, e.id
	`
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("querying participants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			apptID int64
			row    employeeRow
		)
		if err := rows.Scan(append([]any{&apptID}, row.targets()...)...); err != nil {
			return fmt.Errorf("scanning participant: %w", err)
		}
		if a, ok := byID[apptID]; ok {
			a.Participants = append(a.Participants, row.employee())
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating participants: %w", err)
	}
	return nil
}

func insertParticipants(ctx context.Context, q querier, appointmentID int64, employeeIDs []int64) error {
	for _, id := range employeeIDs {
		_, err := q.ExecContext(ctx,
			`INSERT OR IGNORE INTO appointment_participants (appointment_id, employee_id) VALUES (?, ?)`,
			appointmentID, id,
		)
		if err != nil {
			return fmt.Errorf("inserting participant: %w", err)
		}
	}
	return nil
}

// checkRelated verifies the owner and every participant exist.
func checkRelated(ctx context.Context, q querier, a *appointment.Appointment) error {
	if id := a.EmployeeID(); id != nil {
		ok, err := exists(ctx, q, "employees", *id)
		if err != nil {
			return err
		}
		if !ok {
			return relatedNotFound("employee", "employee", *id)
		}
	}
	for _, id := range a.ParticipantIDs() {
		ok, err := exists(ctx, q, "employees", id)
		if err != nil {
			return err
		}
		if !ok {
			return relatedNotFound("participants", "employee", id)
		}
	}
	return nil
}
