package rsvp

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/event"
)

type Attendee struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	EventID   uuid.UUID   `gorm:"type:uuid;column:event_id;not null;index" json:"event_id"`
	Event     event.Event `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name      string      `gorm:"not null" json:"name"`
	Email     string      `gorm:"not null" json:"email"`
	Phone     string      `gorm:"not null" json:"phone"`
	Status    Status      `gorm:"column:rsvp_status;not null" json:"rsvp_status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Attendee) TableName() string {
	return "attendees"
}
