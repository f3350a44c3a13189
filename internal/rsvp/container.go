package rsvp

import (
	"github.com/saulo-duarte/chronos-events/internal/event"
	"gorm.io/gorm"
)

type RSVPContainer struct {
	Handler *Handler
}

func NewRSVPContainer(db *gorm.DB, eventService event.EventService) *RSVPContainer {
	repo := NewRepository(db)
	service := NewService(repo, eventService)

	return &RSVPContainer{
		Handler: NewHandler(service),
	}
}
