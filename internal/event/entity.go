package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/calendar"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

type Event struct {
	ID                    uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name                  string             `gorm:"column:event_name;not null" json:"event_name"`
	Description           string             `gorm:"column:event_description" json:"event_description,omitempty"`
	Category              Category           `gorm:"column:event_type;not null" json:"event_type"`
	Kind                  Kind               `gorm:"column:calendar_event_type;not null" json:"calendar_event_type"`
	StartDate             util.LocalDateTime `gorm:"column:start_date;not null" json:"start_date"`
	EndDate               util.LocalDateTime `gorm:"column:end_date;not null" json:"end_date"`
	Location              string             `json:"location"`
	MeetingLink           string             `json:"meeting_link,omitempty"`
	MaxAttendees          *int               `json:"max_attendees,omitempty"`
	Price                 *float64           `json:"price,omitempty"`
	GoogleCalendarEventID string             `gorm:"column:google_calendar_event_id" json:"-"`
	CreatedBy             *uuid.UUID         `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// ToCalendar returns the read model the calendar grid renders.
func (e *Event) ToCalendar() calendar.Event {
	return calendar.Event{
		ID:          e.ID.String(),
		Name:        e.Name,
		Category:    string(e.Category),
		Start:       e.StartDate.Time,
		End:         e.EndDate.Time,
		Description: e.Description,
		Location:    e.Location,
		MeetingLink: e.MeetingLink,
	}
}
