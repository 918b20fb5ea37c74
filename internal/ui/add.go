package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/layout"
	"github.com/javiermolinar/dayview/internal/scheduler"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date         string
		start        string
		end          string
		description  string
		employee     string
		participants []string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new appointment",
		Long: `Add a new appointment.

Times are HH:MM on --date (UTC) or full datetimes. Without --start the
first free slot from the configured default start is used; without --end
the configured default duration is applied.`,
		Example: `  dayview add "Planning" --start=09:00 --end=10:00 --employee=ada@example.com
  dayview add "Standup" --date=tomorrow --participant=2 --participant=3`,
		Args: cobra.ExactArgs(1),
		RunE: a.storeCmd(func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			day, err := parseDay(date)
			if err != nil {
				return err
			}

			in := appointment.Input{Title: args[0], Description: description}
			if in.Start, in.End, err = a.resolveSlot(ctx, day, start, end); err != nil {
				return err
			}

			if employee != "" {
				e, err := resolveEmployee(ctx, a.store, employee)
				if err != nil {
					return err
				}
				in.EmployeeID = &e.ID
			}
			if in.ParticipantIDs, err = resolveEmployeeIDs(ctx, a.store, participants); err != nil {
				return err
			}

			appt, err := appointment.New(in)
			if err != nil {
				return err
			}
			if err := a.store.CreateAppointment(ctx, appt); err != nil {
				return fmt.Errorf("creating appointment: %w", err)
			}

			_, _ = fmt.Fprintf(a.out, "Created appointment #%d: %s %s %s\n",
				appt.ID, appt.Title, appt.Start.Format(time.DateOnly), formatRange(appt))
			return nil
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD or today/tomorrow/next-monday, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start (HH:MM or datetime, default: first free slot)")
	cmd.Flags().StringVar(&end, "end", "", "End (HH:MM or datetime, default: start + default duration)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&employee, "employee", "", "Owner (ID or email)")
	cmd.Flags().StringArrayVar(&participants, "participant", nil, "Participant (ID or email, repeatable)")

	return cmd
}

// resolveSlot turns the --start/--end flags into a range on day, filling
// gaps from the scheduler.
func (a *App) resolveSlot(ctx context.Context, day time.Time, start, end string) (time.Time, time.Time, error) {
	sched, err := scheduler.New(a.config.Layout.DefaultStart, a.config.Layout.DefaultDuration.Duration)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	var from time.Time
	if start == "" {
		existing, err := a.store.ListAppointments(ctx, appointment.AppointmentFilter{Date: &day})
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("listing appointments: %w", err)
		}
		busy := make([]layout.Interval, 0, len(existing))
		for _, e := range existing {
			busy = append(busy, e)
		}
		from = sched.NextFree(day, busy).Start
	} else if from, err = parseWhen(day, start); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}

	if end == "" {
		return from, from.Add(sched.Duration()), nil
	}
	to, err := parseWhen(day, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}
	return from, to, nil
}
