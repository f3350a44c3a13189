package event

import (
	"time"

	ical "github.com/arran4/golang-ical"
)

const icsProductID = "-//chronos-events//Event Calendar//EN"

// buildICS renders events as an iCalendar feed. Times are written in UTC.
func buildICS(events []*Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("Events")

	for _, e := range events {
		ev := cal.AddEvent(e.ID.String() + "@chronos-events")
		ev.SetDtStampTime(stamp)
		if !e.CreatedAt.IsZero() {
			ev.SetCreatedTime(e.CreatedAt)
		}
		if !e.UpdatedAt.IsZero() {
			ev.SetModifiedAt(e.UpdatedAt)
		}
		ev.SetStartAt(e.StartDate.Time)
		ev.SetEndAt(e.EndDate.Time)
		ev.SetSummary(e.Name)
		ev.SetProperty(ical.ComponentPropertyCategories, string(e.Category))
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.MeetingLink != "" {
			ev.SetURL(e.MeetingLink)
		}
	}

	return cal.Serialize()
}
