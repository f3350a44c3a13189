package rsvp

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/event"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	"github.com/sirupsen/logrus"
)

var (
	ErrIncompleteFields = notification.NewPublicError("Please complete all fields.", nil)
	ErrInvalidEmail     = notification.NewPublicError("Please enter a valid email address.", nil)
	ErrInvalidID        = notification.NewPublicError("Invalid attendee id", nil)
	ErrAttendeeNotFound = notification.NewPublicError("Attendee not found", nil)
)

type RSVPService interface {
	SubmitRSVP(ctx context.Context, dto SubmitRSVPDTO) (*Attendee, error)
	ListAttendees(ctx context.Context, eventID string) ([]*Attendee, error)
	ToggleStatus(ctx context.Context, id string) (*Attendee, error)
	DeleteRSVP(ctx context.Context, id string) error
}

type rsvpService struct {
	repo         AttendeeRepository
	eventService event.EventService
}

func NewService(repo AttendeeRepository, eventService event.EventService) RSVPService {
	return &rsvpService{
		repo:         repo,
		eventService: eventService,
	}
}

func (s *rsvpService) SubmitRSVP(ctx context.Context, dto SubmitRSVPDTO) (*Attendee, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	email := strings.TrimSpace(dto.Email)
	phone := strings.TrimSpace(dto.Phone)
	if name == "" || email == "" || phone == "" || strings.TrimSpace(dto.EventID) == "" {
		return nil, ErrIncompleteFields
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		log.WithError(err).Warn("Invalid attendee email")
		return nil, ErrInvalidEmail
	}

	e, err := s.eventService.GetEvent(ctx, dto.EventID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a := &Attendee{
		ID:        uuid.New(),
		EventID:   e.ID,
		Name:      name,
		Email:     addr.Address,
		Phone:     phone,
		Status:    StatusRegistered,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Error("Failed to submit RSVP")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"attendee_id": a.ID,
		"event_id":    a.EventID,
	}).Info("RSVP submitted")
	return a, nil
}

func (s *rsvpService) ListAttendees(ctx context.Context, eventID string) ([]*Attendee, error) {
	log := config.WithContext(ctx)

	e, err := s.eventService.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	attendees, err := s.repo.ListByEvent(e.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list attendees")
		return nil, err
	}
	return attendees, nil
}

func (s *rsvpService) find(ctx context.Context, id string) (*Attendee, error) {
	log := config.WithContext(ctx)

	attendeeID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrInvalidID
	}

	a, err := s.repo.FindByID(attendeeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("attendee_id", id).Warn("Attendee not found")
			return nil, ErrAttendeeNotFound
		}
		log.WithError(err).Error("Error finding attendee")
		return nil, err
	}
	return a, nil
}

// ToggleStatus cancels a registration, or restores a cancelled one.
func (s *rsvpService) ToggleStatus(ctx context.Context, id string) (*Attendee, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Status = a.Status.Toggled()
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(a); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to update RSVP status")
		return nil, err
	}
	return a, nil
}

func (s *rsvpService) DeleteRSVP(ctx context.Context, id string) error {
	a, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(a.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrAttendeeNotFound
		}
		config.WithContext(ctx).WithError(err).Error("Failed to delete RSVP")
		return err
	}
	return nil
}
