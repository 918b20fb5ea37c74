package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayview/internal/appointment"
)

func (a *App) listCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		Long: `List appointments ordered by start, grouped by UTC day.

With --date only appointments touching that day are listed.`,
		Example: `  dayview list
  dayview list --date=2025-06-07
  dayview list --date=tomorrow`,
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

			if len(appts) == 0 {
				_, _ = fmt.Fprintln(a.out, "No appointments found.")
				return nil
			}

			maxTitle := min(max(outputWidth(a.out)-50, 20), 60)
			var currentDate string
			for _, appt := range appts {
				day := appt.Start.UTC().Format(time.DateOnly)
				if day != currentDate {
					if currentDate != "" {
						_, _ = fmt.Fprintln(a.out)
					}
					_, _ = fmt.Fprintf(a.out, "=== %s ===\n", styledHeading(day))
					currentDate = day
				}
				printAppointmentRow(a.out, appt, maxTitle)
			}

			return nil
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "Only this day (YYYY-MM-DD or today/tomorrow/...)")

	return cmd
}

func (a *App) dayCmd() *cobra.Command {
	var (
		date    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show a day's timeline",
		Long: `Display one UTC day as a timeline. Overlapping appointments share a
row headed by the earliest, with the others counted in the badge.`,
		RunE: a.storeCmd(func(_ *cobra.Command, _ []string) error {
			if noColor {
				setColor(false)
			}

			day, err := parseDay(date)
			if err != nil {
				return err
			}

			appts, err := a.store.ListAppointments(context.Background(), appointment.AppointmentFilter{Date: &day})
			if err != nil {
				return fmt.Errorf("fetching appointments: %w", err)
			}

			printDay(a.out, appointment.NewDay(day, appts), outputWidth(a.out))
			return nil
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (default: today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
