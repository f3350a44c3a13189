package ticket

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(t *Ticket) error
	ListByEvent(eventID uuid.UUID) ([]*Ticket, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(t *Ticket) error {
	return r.db.Omit("Event").Create(t).Error
}

func (r *ticketRepository) ListByEvent(eventID uuid.UUID) ([]*Ticket, error) {
	var tickets []*Ticket
	if err := r.db.
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}
