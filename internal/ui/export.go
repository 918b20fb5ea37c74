package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/ics"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		date string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export appointments as iCalendar",
		Example: `  dayview export --date=today > today.ics
  dayview export --out=all.ics`,
		RunE: a.storeCmd(func(_ *cobra.Command, _ []string) error {
			var f appointment.AppointmentFilter
			if date != "" {
				day, err := parseDay(date)
				if err != nil {
					return err
				}
				f.Date = &day
			}

			appts, err := a.store.ListAppointments(context.Background(), f)
			if err != nil {
				return fmt.Errorf("listing appointments: %w", err)
			}
			data := ics.Export(appts, ics.DefaultProdID)

			if out == "" {
				_, err := a.out.Write(data)
				return err
			}
			path, err := resolvePath(out)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Exported %d appointments to %s\n", len(appts), path)
			return nil
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "Only this day (default: all)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}
