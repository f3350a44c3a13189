package googlecalendar

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is the part of an event mirrored to Google Calendar.
type CalendarEvent struct {
	ID                    uuid.UUID
	Name                  string
	Description           string
	Location              string
	MeetingLink           string
	StartDate             *time.Time
	EndDate               *time.Time
	GoogleCalendarEventID *string
}
