package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayview/internal/fixture"
)

func (a *App) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file.yaml]",
		Short: "Load departments, employees and appointments from YAML",
		Long: `Insert the contents of a YAML fixture into the database.

Employees reference departments by name; appointments reference
employees by email.`,
		Example: `  dayview seed testdata/office.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: a.storeCmd(func(_ *cobra.Command, args []string) error {
			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening fixture: %w", err)
			}
			defer func() { _ = f.Close() }()

			doc, err := fixture.Load(f)
			if err != nil {
				return err
			}
			res, err := fixture.Apply(context.Background(), a.store, doc)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(a.out, "Seeded %d departments, %d employees, %d appointments\n",
				res.Departments, res.Employees, res.Appointments)
			return nil
		}),
	}
}
