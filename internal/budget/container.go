package budget

import (
	"github.com/saulo-duarte/chronos-events/internal/event"
	"gorm.io/gorm"
)

type BudgetContainer struct {
	Handler *Handler
}

func NewBudgetContainer(db *gorm.DB, eventService event.EventService) *BudgetContainer {
	repo := NewRepository(db)
	service := NewService(repo, eventService)

	return &BudgetContainer{
		Handler: NewHandler(service),
	}
}
