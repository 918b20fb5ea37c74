// Package ics converts appointments to and from iCalendar (RFC 5545).
package ics

import (
	"fmt"

	ical "github.com/arran4/golang-ical"

	"github.com/javiermolinar/dayview/internal/appointment"
)

// DefaultProdID identifies dayview as the producer of exported calendars.
const DefaultProdID = "-//dayview//Day View Calendar//EN"

// UID returns the stable iCalendar UID of an appointment.
func UID(id int64) string {
	return fmt.Sprintf("appointment-%d@dayview", id)
}

// Export renders appointments as a VCALENDAR with one VEVENT each.
func Export(appts []*appointment.Appointment, prodID string) []byte {
	if prodID == "" {
		prodID = DefaultProdID
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, a := range appts {
		event := cal.AddEvent(UID(a.ID))
		event.SetDtStampTime(a.UpdatedAt.UTC())
		if !a.CreatedAt.IsZero() {
			event.SetCreatedTime(a.CreatedAt.UTC())
		}
		event.SetModifiedAt(a.UpdatedAt.UTC())
		event.SetStartAt(a.Start.UTC())
		event.SetEndAt(a.End.UTC())
		event.SetSummary(a.Title)
		if a.Description != "" {
			event.SetDescription(a.Description)
		}
		if a.Employee != nil {
			event.SetOrganizer(a.Employee.Email, ical.WithCN(a.Employee.Name))
		}
		for _, p := range a.Participants {
			event.AddAttendee(p.Email, ical.WithCN(p.Name))
		}
	}

	return []byte(cal.Serialize())
}
