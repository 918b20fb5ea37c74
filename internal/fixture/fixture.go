// Package fixture seeds a store from a YAML document.
//
// Employees reference departments by name and appointments reference
// employees by email, so a fixture reads the same way it is written:
//
//	departments:
//	  - name: Engineering
//	    manager: ada@example.com
//	employees:
//	  - name: Ada Lovelace
//	    email: ada@example.com
//	    position: manager
//	    department: Engineering
//	appointments:
//	  - title: Planning
//	    start: 2025-06-07T10:00:00Z
//	    end: 2025-06-07T11:00:00Z
//	    employee: ada@example.com
//	    participants: [grace@example.com]
package fixture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/dayview/internal/appointment"
)

// Document is the top-level YAML shape.
type Document struct {
	Departments  []Department  `yaml:"departments"`
	Employees    []Employee    `yaml:"employees"`
	Appointments []Appointment `yaml:"appointments"`
}

// Department is a fixture department. Manager is an employee email.
type Department struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Manager     string `yaml:"manager"`
}

// Employee is a fixture employee. Department is a department name.
type Employee struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Position   string `yaml:"position"`
	Department string `yaml:"department"`
}

// Appointment is a fixture appointment. Employee and Participants are emails.
type Appointment struct {
	Title        string    `yaml:"title"`
	Description  string    `yaml:"description"`
	Start        time.Time `yaml:"start"`
	End          time.Time `yaml:"end"`
	Employee     string    `yaml:"employee"`
	Participants []string  `yaml:"participants"`
}

// Result counts what Apply inserted.
type Result struct {
	Departments  int
	Employees    int
	Appointments int
}

// Load decodes a fixture document. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	return &doc, nil
}

// Apply inserts the document into store in dependency order: departments,
// employees, department managers, then appointments. It stops at the first
// error; rows inserted before it are kept.
func Apply(ctx context.Context, store appointment.Store, doc *Document) (Result, error) {
	var res Result

	departments := make(map[string]*appointment.Department, len(doc.Departments))
	for i, fd := range doc.Departments {
		d, err := appointment.NewDepartment(fd.Name, fd.Description, nil)
		if err != nil {
			return res, fmt.Errorf("department %d: %w", i+1, err)
		}
		if err := store.CreateDepartment(ctx, d); err != nil {
			return res, fmt.Errorf("department %q: %w", fd.Name, err)
		}
		departments[d.Name] = d
		res.Departments++
	}

	employees := make(map[string]*appointment.Employee, len(doc.Employees))
	for i, fe := range doc.Employees {
		e, err := appointment.NewEmployee(fe.Name, fe.Email, fe.Position)
		if err != nil {
			return res, fmt.Errorf("employee %d: %w", i+1, err)
		}
		if fe.Department != "" {
			d, ok := departments[fe.Department]
			if !ok {
				return res, fmt.Errorf("employee %q: unknown department %q", fe.Email, fe.Department)
			}
			e.Department = d
		}
		if err := store.CreateEmployee(ctx, e); err != nil {
			return res, fmt.Errorf("employee %q: %w", fe.Email, err)
		}
		employees[e.Email] = e
		res.Employees++
	}

	// managers can only be set once their employee rows exist
	for _, fd := range doc.Departments {
		if fd.Manager == "" {
			continue
		}
		m, ok := employees[fd.Manager]
		if !ok {
			return res, fmt.Errorf("department %q: unknown manager %q", fd.Name, fd.Manager)
		}
		d := departments[fd.Name]
		d.ManagerID = &m.ID
		if err := store.UpdateDepartment(ctx, d); err != nil {
			return res, fmt.Errorf("department %q: %w", fd.Name, err)
		}
	}

	for i, fa := range doc.Appointments {
		in := appointment.Input{
			Title:       fa.Title,
			Description: fa.Description,
			Start:       fa.Start,
			End:         fa.End,
		}
		if fa.Employee != "" {
			e, ok := employees[fa.Employee]
			if !ok {
				return res, fmt.Errorf("appointment %q: unknown employee %q", fa.Title, fa.Employee)
			}
			in.EmployeeID = &e.ID
		}
		for _, email := range fa.Participants {
			e, ok := employees[email]
			if !ok {
				return res, fmt.Errorf("appointment %q: unknown participant %q", fa.Title, email)
			}
			in.ParticipantIDs = append(in.ParticipantIDs, e.ID)
		}

		a, err := appointment.New(in)
		if err != nil {
			return res, fmt.Errorf("appointment %d: %w", i+1, err)
		}
		if err := store.CreateAppointment(ctx, a); err != nil {
			return res, fmt.Errorf("appointment %q: %w", fa.Title, err)
		}
		res.Appointments++
	}

	return res, nil
}
