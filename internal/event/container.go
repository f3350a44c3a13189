package event

import (
	googlecalendar "github.com/saulo-duarte/chronos-events/internal/google_calendar"
	"gorm.io/gorm"
)

type EventContainer struct {
	Handler *Handler
	Service EventService
	Source  *Source
}

func NewEventContainer(db *gorm.DB, calendarManager googlecalendar.CalendarManager) *EventContainer {
	repo := NewRepository(db)
	service := NewService(repo, calendarManager)

	return &EventContainer{
		Handler: NewHandler(service),
		Service: service,
		Source:  NewSource(service),
	}
}
