package ticket

import (
	"github.com/saulo-duarte/chronos-events/internal/event"
	"gorm.io/gorm"
)

type TicketContainer struct {
	Handler *Handler
}

func NewTicketContainer(db *gorm.DB, eventService event.EventService) *TicketContainer {
	repo := NewRepository(db)
	service := NewService(repo, eventService)

	return &TicketContainer{
		Handler: NewHandler(service),
	}
}
