package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/dayview/internal/appointment"
	"github.com/javiermolinar/dayview/internal/dateutil"
)

// parseID parses a positive numeric ID argument.
func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q", kind, arg)
	}
	return id, nil
}

// parseDay accepts relative dates ("today", "tomorrow", "next-monday") as
// well as YYYY-MM-DD.
func parseDay(s string) (time.Time, error) {
	return dateutil.ParseRelativeDate(s, dateutil.Today())
}

// parseWhen reads "HH:MM" on day, or a full datetime.
func parseWhen(day time.Time, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == 5 {
		return dateutil.AtClock(day, s)
	}
	return dateutil.ParseDateTime(s)
}

// resolveEmployee finds an employee by ID or exact email.
func resolveEmployee(ctx context.Context, store appointment.EmployeeRepository, ref string) (*appointment.Employee, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return store.GetEmployee(ctx, id)
	}

	candidates, err := store.ListEmployees(ctx, appointment.EmployeeFilter{Email: ref})
	if err != nil {
		return nil, err
	}
	for _, e := range candidates {
		if strings.EqualFold(e.Email, ref) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("employee %q: %w", ref, appointment.ErrNotFound)
}

// resolveEmployeeIDs maps employee references to IDs.
func resolveEmployeeIDs(ctx context.Context, store appointment.EmployeeRepository, refs []string) ([]int64, error) {
	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		e, err := resolveEmployee(ctx, store, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, e.ID)
	}
	return ids, nil
}
