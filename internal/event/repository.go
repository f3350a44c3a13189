package event

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type EventRepository interface {
	Create(e *Event) error
	Update(e *Event) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*Event, error)
	List() ([]*Event, error)
	ListByKind(kind Kind) ([]*Event, error)
	SearchByName(name string) ([]*Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(e *Event) error {
	return r.db.Create(e).Error
}

func (r *eventRepository) Update(e *Event) error {
	return r.db.Save(e).Error
}

func (r *eventRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&Event{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) FindByID(id uuid.UUID) (*Event, error) {
	var e Event
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) List() ([]*Event, error) {
	var events []*Event
	if err := r.db.Order("start_date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListByKind(kind Kind) ([]*Event, error) {
	var events []*Event
	if err := r.db.
		Where("calendar_event_type = ?", kind).
		Order("start_date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// SearchByName matches name as a case-insensitive substring of the event name.
func (r *eventRepository) SearchByName(name string) ([]*Event, error) {
	var events []*Event
	pattern := "%" + escapeLike(strings.ToLower(name)) + "%"
	if err := r.db.
		Where(`LOWER(event_name) LIKE ? ESCAPE '\'`, pattern).
		Order("start_date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
