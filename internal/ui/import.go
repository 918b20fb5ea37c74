package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/dateutil"
	"github.com/javiermolinar/dayview/internal/ics"
)

func (a *App) importCmd() *cobra.Command {
	var (
		from     string
		to       string
		employee string
	)

	cmd := &cobra.Command{
		Use:   "import [file.ics]",
		Short: "Import appointments from an iCalendar file",
		Long: `Import VEVENTs from an .ics file as appointments.

Recurring events are expanded inside the --from/--to window (both
inclusive days). Without a window, recurrences are expanded for one
year from their first occurrence. Attendees and organizers matching an
existing employee email are linked; others are ignored.`,
		Example: `  dayview import team.ics
  dayview import team.ics --from=2025-06-01 --to=2025-06-30 --employee=ada@example.com`,
		Args: cobra.ExactArgs(1),
		RunE: a.storeCmd(func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			var window ics.Window
			if from != "" || to != "" {
				dr, err := dateutil.NewDateRange(from, to)
				if err != nil {
					return err
				}
				window = ics.Window{Start: dr.Start, End: dr.Until()}
			}

			var owner *appointment.Employee
			if employee != "" {
				if owner, err = resolveEmployee(ctx, a.store, employee); err != nil {
					return err
				}
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening calendar: %w", err)
			}
			defer func() { _ = f.Close() }()

			events, err := ics.Parse(f, window, a.logger)
			if err != nil {
				return err
			}

			count, err := importEvents(ctx, a.store, events, owner, a.logger)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(a.out, "Imported %d of %d events from %s\n", count, len(events), path)
			return nil
		}),
	}

	cmd.Flags().StringVar(&from, "from", "", "First day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of the window (YYYY-MM-DD, default: --from)")
	cmd.Flags().StringVar(&employee, "employee", "", "Owner for events without a known organizer (ID or email)")

	return cmd
}

// importEvents creates one appointment per event. Events whose organizer is
// a known employee are owned by them, otherwise by owner. Events that fail
// validation are skipped with a warning.
func importEvents(ctx context.Context, store appointment.Store, events []ics.Event, owner *appointment.Employee, logger *zap.Logger) (int, error) {
	employees, err := store.ListEmployees(ctx, appointment.EmployeeFilter{})
	if err != nil {
		return 0, fmt.Errorf("listing employees: %w", err)
	}
	byEmail := make(map[string]int64, len(employees))
	for _, e := range employees {
		byEmail[strings.ToLower(e.Email)] = e.ID
	}

	imported := 0
	for _, ev := range events {
		in := appointment.Input{
			Title:       ev.Summary,
			Description: ev.Description,
			Start:       ev.Start,
			End:         ev.End,
		}
		if id, ok := byEmail[strings.ToLower(ev.Organizer)]; ok {
			in.EmployeeID = &id
		} else if owner != nil {
			in.EmployeeID = &owner.ID
		}
		for _, attendee := range ev.Attendees {
			if id, ok := byEmail[strings.ToLower(attendee)]; ok {
				in.ParticipantIDs = append(in.ParticipantIDs, id)
			}
		}

		appt, err := appointment.New(in)
		if err != nil {
			logger.Warn("skipping event", zap.String("uid", ev.UID), zap.Error(err))
			continue
		}
		if err := store.CreateAppointment(ctx, appt); err != nil {
			return imported, fmt.Errorf("importing event %q: %w", ev.UID, err)
		}
		imported++
	}

	return imported, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
