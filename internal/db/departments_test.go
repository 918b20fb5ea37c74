package db

import (
	"context"
	"errors"
	"testing"

	"github.com/javiermolinar/dayview/internal/appointment"
)

func mustManager(t *testing.T, repo *SQLite, name, email string) *appointment.Employee {
	t.Helper()
	e, err := appointment.NewEmployee(name, email, "manager")
	if err != nil {
		t.Fatalf("building manager: %v", err)
	}
	if err := repo.CreateEmployee(context.Background(), e); err != nil {
		t.Fatalf("creating manager: %v", err)
	}
	return e
}

func TestCreateDepartment_MovesManager(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	boss := mustManager(t, repo, "Boss", "boss@example.com")

	d, _ := appointment.NewDepartment("Engineering", "builds things", &boss.ID)
	if err := repo.CreateDepartment(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetEmployee(ctx, boss.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Department == nil || got.Department.ID != d.ID {
		t.Errorf("expected manager moved into department %d, got %+v", d.ID, got.Department)
	}
	if got.Department.ManagerID == nil || *got.Department.ManagerID != boss.ID {
		t.Errorf("expected nested department to report manager %d", boss.ID)
	}
}

func TestCreateDepartment_Errors(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	worker := mustEmployee(t, repo, "Worker", "worker@example.com")
	boss := mustManager(t, repo, "Boss", "boss@example.com")

	first, _ := appointment.NewDepartment("Sales", "", &boss.ID)
	if err := repo.CreateDepartment(ctx, first); err != nil {
		t.Fatalf("creating first department: %v", err)
	}

	missing := int64(404)
	tests := []struct {
		name      string
		dept      *appointment.Department
		wantErr   error
		wantField string
	}{
		{"not a manager", &appointment.Department{Name: "Ops", ManagerID: &worker.ID}, appointment.ErrNotManager, "manager"},
		{"unknown manager", &appointment.Department{Name: "Ops", ManagerID: &missing}, appointment.ErrNotFound, "manager"},
		{"duplicate name", &appointment.Department{Name: "Sales"}, appointment.ErrDuplicateDepartment, "name"},
		{"manager already manages", &appointment.Department{Name: "Ops", ManagerID: &boss.ID}, appointment.ErrAlreadyManages, "manager"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.CreateDepartment(ctx, tt.dept)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			var fe *appointment.FieldError
			if !errors.As(err, &fe) || fe.Field != tt.wantField {
				t.Errorf("expected field %q, got %v", tt.wantField, err)
			}
		})
	}
}

func TestUpdateDepartment(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d, _ := appointment.NewDepartment("Support", "", nil)
	if err := repo.CreateDepartment(ctx, d); err != nil {
		t.Fatalf("creating department: %v", err)
	}

	boss := mustManager(t, repo, "Boss", "boss@example.com")
	d.Description = "helps customers"
	d.ManagerID = &boss.ID
	if err := repo.UpdateDepartment(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetDepartment(ctx, d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Description != "helps customers" || got.ManagerID == nil || *got.ManagerID != boss.ID {
		t.Errorf("unexpected department %+v", got)
	}

	employees, _ := repo.ListDepartmentEmployees(ctx, d.ID)
	if len(employees) != 1 || employees[0].ID != boss.ID {
		t.Errorf("expected manager in department, got %+v", employees)
	}

	ghost := &appointment.Department{ID: 77, Name: "Ghost"}
	if err := repo.UpdateDepartment(ctx, ghost); !errors.Is(err, appointment.ErrNotFound) {
		t.Errorf("got error %v, want %v", err, appointment.ErrNotFound)
	}
}

func TestDeleteDepartment_UnassignsEmployees(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	boss := mustManager(t, repo, "Boss", "boss@example.com")
	d, _ := appointment.NewDepartment("Legal", "", &boss.ID)
	if err := repo.CreateDepartment(ctx, d); err != nil {
		t.Fatalf("creating department: %v", err)
	}

	if err := repo.DeleteDepartment(ctx, d.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetEmployee(ctx, boss.ID)
	if err != nil {
		t.Fatalf("expected employee kept: %v", err)
	}
	if got.Department != nil {
		t.Errorf("expected department cleared, got %+v", got.Department)
	}

	list, _ := repo.ListDepartments(ctx)
	if len(list) != 0 {
		t.Errorf("expected no departments, got %d", len(list))
	}
}

func TestDeleteManager_ClearsDepartmentManager(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	boss := mustManager(t, repo, "Boss", "boss@example.com")
	d, _ := appointment.NewDepartment("Finance", "", &boss.ID)
	if err := repo.CreateDepartment(ctx, d); err != nil {
		t.Fatalf("creating department: %v", err)
	}

	if err := repo.DeleteEmployee(ctx, boss.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetDepartment(ctx, d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ManagerID != nil {
		t.Errorf("expected manager cleared, got %d", *got.ManagerID)
	}
}
