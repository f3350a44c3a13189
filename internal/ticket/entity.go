package ticket

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/event"
)

type Ticket struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	EventID       uuid.UUID     `gorm:"type:uuid;column:event_id;not null;index" json:"event_id"`
	Event         event.Event   `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	BuyerName     string        `gorm:"not null" json:"buyer_name"`
	BuyerEmail    string        `gorm:"not null" json:"buyer_email"`
	Quantity      int           `gorm:"not null" json:"quantity"`
	TicketType    TicketType    `gorm:"not null" json:"ticket_type"`
	PaymentStatus PaymentStatus `gorm:"not null" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}
