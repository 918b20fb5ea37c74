package db

import "fmt"

// schema is applied in order on every start. Each statement is idempotent.
var schema = []struct {
	name  string
	query string
}{
	{"departments", `
		CREATE TABLE IF NOT EXISTS departments (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT NOT NULL UNIQUE,
			manager_id  INTEGER UNIQUE REFERENCES employees(id) ON DELETE SET NULL,
			description TEXT NOT NULL DEFAULT ''
		)`},
	{"employees", `
		CREATE TABLE IF NOT EXISTS employees (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			position      TEXT NOT NULL DEFAULT 'employee' CHECK(position IN ('employee', 'manager')),
			department_id INTEGER REFERENCES departments(id) ON DELETE SET NULL
		)`},
	{"appointments", `
		CREATE TABLE IF NOT EXISTS appointments (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			title          TEXT NOT NULL,
			description    TEXT NOT NULL DEFAULT '',
			start_datetime TEXT NOT NULL,
			end_datetime   TEXT NOT NULL,
			employee_id    INTEGER REFERENCES employees(id) ON DELETE CASCADE,
			created_at     TEXT,
			updated_at     TEXT NOT NULL,
			CONSTRAINT end_after_start CHECK(end_datetime > start_datetime)
		)`},
	{"appointment_participants", `
		CREATE TABLE IF NOT EXISTS appointment_participants (
			appointment_id INTEGER NOT NULL REFERENCES appointments(id) ON DELETE CASCADE,
			employee_id    INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			PRIMARY KEY (appointment_id, employee_id)
		)`},
	{"indexes", `
		CREATE INDEX IF NOT EXISTS idx_appointments_start ON appointments(start_datetime);
		CREATE INDEX IF NOT EXISTS idx_appointments_end ON appointments(end_datetime);
		CREATE INDEX IF NOT EXISTS idx_appointments_employee ON appointments(employee_id);
		CREATE INDEX IF NOT EXISTS idx_participants_employee ON appointment_participants(employee_id);
		CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department_id)
	`},
}

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	for _, step := range schema {
		if _, err := s.db.Exec(step.query); err != nil {
			return fmt.Errorf("creating %s: %w", step.name, err)
		}
	}
	return nil
}
