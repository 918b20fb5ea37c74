package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/dateutil"
)

func (a *App) editCmd() *cobra.Command {
	var (
		title        string
		description  string
		start        string
		end          string
		employee     string
		participants []string
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit an appointment",
		Long: `Change fields of an existing appointment. Only the flags given are
updated. HH:MM times are read on the appointment's own start day.`,
		Example: `  dayview edit 3 --title="Retro" --end=11:30`,
		Args:    cobra.ExactArgs(1),
		RunE: a.storeCmd(func(cmd *cobra.Command, args []string) error {
			id, err := parseID("appointment", args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			appt, err := a.store.GetAppointment(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			day := dateutil.TruncateToDay(appt.Start)
			var patch appointment.Patch
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("start") {
				t, err := parseWhen(day, start)
				if err != nil {
					return fmt.Errorf("start: %w", err)
				}
				patch.Start = &t
			}
			if flags.Changed("end") {
				t, err := parseWhen(day, end)
				if err != nil {
					return fmt.Errorf("end: %w", err)
				}
				patch.End = &t
			}
			if flags.Changed("employee") {
				e, err := resolveEmployee(ctx, a.store, employee)
				if err != nil {
					return err
				}
				patch.EmployeeID = &e.ID
			}
			if flags.Changed("participant") {
				ids, err := resolveEmployeeIDs(ctx, a.store, participants)
				if err != nil {
					return err
				}
				patch.ParticipantIDs = &ids
			}

			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change: pass at least one flag")
			}
			if err := patch.Apply(appt); err != nil {
				return err
			}
			if err := a.store.UpdateAppointment(ctx, appt); err != nil {
				return fmt.Errorf("updating appointment: %w", err)
			}

			_, _ = fmt.Fprintf(a.out, "Updated appointment #%d\n", appt.ID)
			printAppointmentDetail(a.out, appt)
			return nil
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&start, "start", "", "New start (HH:MM or datetime)")
	cmd.Flags().StringVar(&end, "end", "", "New end (HH:MM or datetime)")
	cmd.Flags().StringVar(&employee, "employee", "", "New owner (ID or email)")
	cmd.Flags().StringArrayVar(&participants, "participant", nil, "Replace participants (ID or email, repeatable)")

	return cmd
}

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete an appointment",
		Args:    cobra.ExactArgs(1),
		RunE: a.storeCmd(func(_ *cobra.Command, args []string) error {
			id, err := parseID("appointment", args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteAppointment(context.Background(), id); err != nil {
				return fmt.Errorf("deleting appointment: %w", err)
			}
			_, _ = fmt.Fprintf(a.out, "Deleted appointment #%d\n", id)
			return nil
		}),
	}
}

func (a *App) closestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "closest",
		Short: "Show the next appointment that has not ended",
		RunE: a.storeCmd(func(_ *cobra.Command, _ []string) error {
			appt, err := a.store.ClosestAppointment(context.Background(), a.now())
			if err != nil {
				return err
			}
			printAppointmentDetail(a.out, appt)
			return nil
		}),
	}
}
