package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayview/internal/appointment"
)

func (a *App) employeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"employees"},
		Short:   "Manage employees",
	}
	cmd.AddCommand(a.employeeAddCmd())
	cmd.AddCommand(a.employeeListCmd())
	return cmd
}

func (a *App) employeeAddCmd() *cobra.Command {
	var (
		position   string
		department int64
	)

	cmd := &cobra.Command{
		Use:     "add [name] [email]",
		Short:   "Add an employee",
		Example: `  dayview employee add "Ada Lovelace" ada@example.com --position=manager`,
		Args:    cobra.ExactArgs(2),
		RunE: a.storeCmd(func(_ *cobra.Command, args []string) error {
			e, err := appointment.NewEmployee(args[0], args[1], position)
			if err != nil {
				return err
			}
			if department > 0 {
				e.Department = &appointment.Department{ID: department}
			}

			if err := a.store.CreateEmployee(context.Background(), e); err != nil {
				return fmt.Errorf("creating employee: %w", err)
			}
			_, _ = fmt.Fprintf(a.out, "Created employee #%d: %s\n", e.ID, e)
			return nil
		}),
	}

	cmd.Flags().StringVar(&position, "position", "employee", "Position: employee or manager")
	cmd.Flags().Int64Var(&department, "department", 0, "Department ID")
	return cmd
}

func (a *App) employeeListCmd() *cobra.Command {
	var f appointment.EmployeeFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: a.storeCmd(func(_ *cobra.Command, _ []string) error {
			employees, err := a.store.ListEmployees(context.Background(), f)
			if err != nil {
				return fmt.Errorf("listing employees: %w", err)
			}
			a.printEmployees(employees)
			return nil
		}),
	}

	cmd.Flags().StringVar(&f.Name, "name", "", "Filter by name (substring)")
	cmd.Flags().StringVar(&f.Email, "email", "", "Filter by email (substring)")
	return cmd
}

func (a *App) printEmployees(employees []*appointment.Employee) {
	if len(employees) == 0 {
		_, _ = fmt.Fprintln(a.out, "No employees found.")
		return
	}
	for _, e := range employees {
		dept := "-"
		if e.Department != nil {
			dept = e.Department.Name
		}
		_, _ = fmt.Fprintf(a.out, "  #%-4d %-24s %-32s %-9s %s\n",
			e.ID, e.Name, e.Email, e.Position, styledMuted(dept))
	}
}

func (a *App) departmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "department",
		Aliases: []string{"departments"},
		Short:   "Manage departments",
	}
	cmd.AddCommand(a.departmentAddCmd())
	cmd.AddCommand(a.departmentListCmd())
	cmd.AddCommand(a.departmentEmployeesCmd())
	return cmd
}

func (a *App) departmentAddCmd() *cobra.Command {
	var (
		description string
		manager     string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a department",
		Long: `Add a department. A manager must hold the manager position and is
moved into the new department.`,
		Args: cobra.ExactArgs(1),
		RunE: a.storeCmd(func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			var managerID *int64
			if manager != "" {
				m, err := resolveEmployee(ctx, a.store, manager)
				if err != nil {
					return err
				}
				managerID = &m.ID
			}

			d, err := appointment.NewDepartment(args[0], description, managerID)
			if err != nil {
				return err
			}
			if err := a.store.CreateDepartment(ctx, d); err != nil {
				return fmt.Errorf("creating department: %w", err)
			}
			_, _ = fmt.Fprintf(a.out, "Created department #%d: %s\n", d.ID, d)
			return nil
		}),
	}

	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&manager, "manager", "", "Manager (ID or email)")
	return cmd
}

func (a *App) departmentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: a.storeCmd(func(_ *cobra.Command, _ []string) error {
			departments, err := a.store.ListDepartments(context.Background())
			if err != nil {
				return fmt.Errorf("listing departments: %w", err)
			}
			if len(departments) == 0 {
				_, _ = fmt.Fprintln(a.out, "No departments found.")
				return nil
			}
			for _, d := range departments {
				manager := "-"
				if d.ManagerID != nil {
					manager = fmt.Sprintf("#%d", *d.ManagerID)
				}
				_, _ = fmt.Fprintf(a.out, "  #%-4d %-24s manager %-6s %s\n",
					d.ID, d.Name, manager, styledMuted(d.Description))
			}
			return nil
		}),
	}
}

func (a *App) departmentEmployeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "employees [id]",
		Short: "List the employees of a department",
		Args:  cobra.ExactArgs(1),
		RunE: a.storeCmd(func(_ *cobra.Command, args []string) error {
			id, err := parseID("department", args[0])
			if err != nil {
				return err
			}
			employees, err := a.store.ListDepartmentEmployees(context.Background(), id)
			if err != nil {
				return err
			}
			a.printEmployees(employees)
			return nil
		}),
	}
}
