package task

import (
	"github.com/saulo-duarte/chronos-events/internal/event"
	"gorm.io/gorm"
)

type TaskContainer struct {
	Handler *Handler
}

func NewTaskContainer(db *gorm.DB, eventService event.EventService) *TaskContainer {
	repo := NewRepository(db)
	service := NewService(repo, eventService)

	return &TaskContainer{
		Handler: NewHandler(service),
	}
}
