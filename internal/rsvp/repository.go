package rsvp

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type AttendeeRepository interface {
	Create(a *Attendee) error
	Update(a *Attendee) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*Attendee, error)
	ListByEvent(eventID uuid.UUID) ([]*Attendee, error)
}

type attendeeRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttendeeRepository {
	return &attendeeRepository{db: db}
}

func (r *attendeeRepository) Create(a *Attendee) error {
	return r.db.Omit("Event").Create(a).Error
}

func (r *attendeeRepository) Update(a *Attendee) error {
	return r.db.Omit("Event").Save(a).Error
}

func (r *attendeeRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&Attendee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *attendeeRepository) FindByID(id uuid.UUID) (*Attendee, error) {
	var a Attendee
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *attendeeRepository) ListByEvent(eventID uuid.UUID) ([]*Attendee, error) {
	var attendees []*Attendee
	if err := r.db.
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&attendees).Error; err != nil {
		return nil, err
	}
	return attendees, nil
}
