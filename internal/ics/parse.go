package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

const (
	// defaultDuration applies to events without DTEND.
	defaultDuration = time.Hour

	// maxOccurrences caps the expansion of a single recurring event.
	maxOccurrences = 1000

	// openHorizon bounds recurrence expansion when the window has no end.
	openHorizon = 365 * 24 * time.Hour
)

// Window limits which occurrences Parse returns. A zero Start or End leaves
// that side open; recurring events are then expanded for one year from
// their first occurrence.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) contains(start, end time.Time) bool {
	if !w.Start.IsZero() && !end.After(w.Start) {
		return false
	}
	if !w.End.IsZero() && !start.Before(w.End) {
		return false
	}
	return true
}

// Event is one concrete occurrence read from a calendar.
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time // UTC
	End         time.Time // UTC
	Organizer   string    // email, may be empty
	Attendees   []string  // emails
}

// vevent is a VEVENT before recurrence expansion.
type vevent struct {
	Event
	rrule   string
	exdates []time.Time
}

// Parse reads every VEVENT from r and returns the occurrences inside w
// ordered as they appear in the calendar. Events that cannot be read are
// skipped and logged.
func Parse(r io.Reader, w Window, logger *zap.Logger) ([]Event, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	events := make([]Event, 0)
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve)
		if err != nil {
			logger.Warn("skipping event", zap.String("uid", ev.UID), zap.Error(err))
			continue
		}

		if ev.rrule == "" {
			if w.contains(ev.Start, ev.End) {
				events = append(events, ev.Event)
			}
			continue
		}

		occ, err := expand(ev, w)
		if err != nil {
			logger.Warn("skipping recurring event", zap.String("uid", ev.UID), zap.String("rrule", ev.rrule), zap.Error(err))
			continue
		}
		if len(occ) == maxOccurrences {
			logger.Warn("recurrence truncated", zap.String("uid", ev.UID), zap.Int("cap", maxOccurrences))
		}
		events = append(events, occ...)
	}

	logger.Debug("calendar parsed", zap.Int("events", len(cal.Events())), zap.Int("occurrences", len(events)))
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (vevent, error) {
	var out vevent

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		out.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyOrganizer); p != nil {
		out.Organizer = mailbox(p.Value)
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyAttendee) {
		if email := mailbox(p.Value); email != "" {
			out.Attendees = append(out.Attendees, email)
		}
	}

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil {
		return out, errors.New("missing DTSTART")
	}

	if isDateOnly(startProp) {
		start, err := time.Parse("20060102", strings.TrimSpace(startProp.Value))
		if err != nil {
			return out, fmt.Errorf("parsing DTSTART: %w", err)
		}
		out.Start = start
		out.End = start.AddDate(0, 0, 1)
		if endProp := ve.GetProperty(ical.ComponentPropertyDtEnd); endProp != nil {
			if end, err := time.Parse("20060102", strings.TrimSpace(endProp.Value)); err == nil {
				out.End = end
			}
		}
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return out, fmt.Errorf("parsing DTSTART: %w", err)
		}
		out.Start = start.UTC()
		out.End = out.Start.Add(defaultDuration)
		if ve.GetProperty(ical.ComponentPropertyDtEnd) != nil {
			end, err := ve.GetEndAt()
			if err != nil {
				return out, fmt.Errorf("parsing DTEND: %w", err)
			}
			out.End = end.UTC()
		}
	}

	if !out.End.After(out.Start) {
		return out, errors.New("DTEND must be after DTSTART")
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.rrule = p.Value
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		loc := time.UTC
		if tzid := paramValue(p, "TZID"); tzid != "" {
			if l, err := time.LoadLocation(tzid); err == nil {
				loc = l
			}
		}
		for _, part := range strings.Split(p.Value, ",") {
			if t, err := parseICSTime(part, loc); err == nil {
				out.exdates = append(out.exdates, t.UTC())
			}
		}
	}

	return out, nil
}

// expand materialises the occurrences of a recurring event inside w.
func expand(ev vevent, w Window) ([]Event, error) {
	r, err := rrule.StrToRRule(ev.rrule)
	if err != nil {
		return nil, fmt.Errorf("parsing RRULE: %w", err)
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.exdates {
		set.ExDate(ex)
	}

	duration := ev.End.Sub(ev.Start)

	// an occurrence overlapping the window may start before it
	from := ev.Start
	if !w.Start.IsZero() {
		from = w.Start.Add(-duration)
	}
	to := w.End
	if to.IsZero() {
		to = from.Add(openHorizon)
	}

	occ := make([]Event, 0)
	for _, start := range set.Between(from, to, true) {
		e := ev.Event
		e.Start = start.UTC()
		e.End = e.Start.Add(duration)
		e.Attendees = append([]string(nil), ev.Attendees...)
		if !w.contains(e.Start, e.End) {
			continue
		}
		occ = append(occ, e)
		if len(occ) == maxOccurrences {
			break
		}
	}
	return occ, nil
}

func isDateOnly(p *ical.IANAProperty) bool {
	if strings.EqualFold(paramValue(p, "VALUE"), "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

func paramValue(p *ical.IANAProperty, key string) string {
	if p.ICalParameters == nil {
		return ""
	}
	if vs, ok := p.ICalParameters[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// parseICSTime parses a DATE or DATE-TIME value. Floating times use loc.
func parseICSTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, loc)
	default:
		return time.ParseInLocation("20060102", v, loc)
	}
}

// mailbox strips a "mailto:" prefix from a calendar address.
func mailbox(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 7 && strings.EqualFold(v[:7], "mailto:") {
		v = v[7:]
	}
	return v
}
