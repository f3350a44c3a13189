package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/auth"
	"github.com/saulo-duarte/chronos-events/internal/calendar"
	"github.com/saulo-duarte/chronos-events/internal/config"
	googlecalendar "github.com/saulo-duarte/chronos-events/internal/google_calendar"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrEventNotFound   = notification.NewPublicError("Event not found", nil)
	ErrInvalidID       = notification.NewPublicError("Invalid event id", nil)
	ErrNameRequired    = notification.NewPublicError("Event name is required", nil)
	ErrInvalidCategory = notification.NewPublicError("Invalid event type", nil)
	ErrInvalidKind     = notification.NewPublicError("Invalid calendar event type", nil)
	ErrKindMismatch    = notification.NewPublicError("Event type does not belong to the calendar event type", nil)
	ErrDateRequired    = notification.NewPublicError("A new start date is required", nil)
	ErrInvalidDates    = notification.NewPublicError("End date must not be before start date", nil)
)

type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	ListByKind(ctx context.Context, kind string) ([]*Event, error)
	SearchEvents(ctx context.Context, name string) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, fields calendar.EventFields) (*Event, error)
	UpdateEventDate(ctx context.Context, id string, newStartDate util.LocalDate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ExportICS(ctx context.Context) ([]byte, error)
}

type eventService struct {
	repo            EventRepository
	calendarManager googlecalendar.CalendarManager
	now             func() time.Time
}

func NewService(repo EventRepository, calendarManager googlecalendar.CalendarManager) EventService {
	return &eventService{
		repo:            repo,
		calendarManager: calendarManager,
		now:             time.Now,
	}
}

func parseUUID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsedID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		log.WithError(err).Warn("Invalid event ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsedID, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*Event, error) {
	log := config.WithContext(ctx)

	events, err := s.repo.List()
	if err != nil {
		log.WithError(err).Error("Failed to list events")
		return nil, err
	}
	return events, nil
}

func (s *eventService) ListByKind(ctx context.Context, kind string) ([]*Event, error) {
	log := config.WithContext(ctx)

	k := Kind(strings.ToUpper(strings.TrimSpace(kind)))
	if !k.IsValid() {
		log.WithField("kind", kind).Warn("Invalid calendar event type")
		return nil, ErrInvalidKind
	}

	events, err := s.repo.ListByKind(k)
	if err != nil {
		log.WithError(err).Error("Failed to list events by kind")
		return nil, err
	}
	return events, nil
}

func (s *eventService) SearchEvents(ctx context.Context, name string) ([]*Event, error) {
	log := config.WithContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return s.ListEvents(ctx)
	}

	events, err := s.repo.SearchByName(name)
	if err != nil {
		log.WithError(err).WithField("name", name).Error("Failed to search events")
		return nil, err
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*Event, error) {
	log := config.WithContext(ctx)

	eventID, err := parseUUID(log, id)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.FindByID(eventID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("event_id", id).Warn("Event not found")
			return nil, ErrEventNotFound
		}
		log.WithError(err).Error("Error finding event by ID")
		return nil, err
	}
	return e, nil
}

func (s *eventService) CreateEvent(ctx context.Context, fields calendar.EventFields) (*Event, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(fields.Name) == "" {
		return nil, ErrNameRequired
	}
	category := Category(strings.TrimSpace(fields.Category))
	if !category.IsValid() {
		log.WithField("event_type", fields.Category).Warn("Invalid event type")
		return nil, ErrInvalidCategory
	}
	kind := category.Kind()
	if raw := strings.TrimSpace(fields.Kind); raw != "" {
		requested := Kind(strings.ToUpper(raw))
		if !requested.IsValid() {
			return nil, ErrInvalidKind
		}
		if requested != kind {
			return nil, ErrKindMismatch
		}
	}
	if fields.End.Before(fields.Start) {
		return nil, ErrInvalidDates
	}

	now := s.now()
	e := &Event{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(fields.Name),
		Description:  fields.Description,
		Category:     category,
		Kind:         kind,
		StartDate:    util.LocalDateTime{Time: fields.Start},
		EndDate:      util.LocalDateTime{Time: fields.End},
		Location:     fields.Location,
		MeetingLink:  fields.MeetingLink,
		MaxAttendees: fields.MaxAttendees,
		Price:        fields.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if claims, err := auth.GetUserClaimsFromContext(ctx); err == nil {
		if userID, err := uuid.Parse(claims.UserID); err == nil {
			e.CreatedBy = &userID
		}
	}

	if err := s.repo.Create(e); err != nil {
		log.WithError(err).Error("Failed to create event")
		return nil, err
	}

	s.syncCalendar(ctx, log, e)

	log.WithField("event_id", e.ID).Info("Event created successfully")
	return e, nil
}

// UpdateEventDate moves the event to a new day keeping its time of day. The
// end moves by the same amount so the duration is unchanged.
func (s *eventService) UpdateEventDate(ctx context.Context, id string, newStartDate util.LocalDate) (*Event, error) {
	log := config.WithContext(ctx)

	if newStartDate.IsZero() {
		return nil, ErrDateRequired
	}

	e, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStart := e.StartDate.In(config.Location)
	newStart := time.Date(
		newStartDate.Year, newStartDate.Month, newStartDate.Day,
		oldStart.Hour(), oldStart.Minute(), oldStart.Second(), oldStart.Nanosecond(),
		config.Location,
	)
	delta := newStart.Sub(oldStart)

	e.StartDate = util.LocalDateTime{Time: newStart}
	e.EndDate = util.LocalDateTime{Time: e.EndDate.Add(delta)}
	e.UpdatedAt = s.now()

	if err := s.repo.Update(e); err != nil {
		log.WithError(err).Error("Failed to update event date")
		return nil, err
	}

	s.syncCalendar(ctx, log, e)

	log.WithFields(logrus.Fields{
		"event_id":       e.ID,
		"new_start_date": newStartDate.String(),
	}).Info("Event date updated")
	return e, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	e, err := s.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(e.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrEventNotFound
		}
		log.WithError(err).Error("Failed to delete event")
		return err
	}

	if e.GoogleCalendarEventID != "" {
		if err := s.calendarManager.RemoveEvent(ctx, e.GoogleCalendarEventID); err != nil {
			log.WithError(err).Warnf("Failed to delete Google Calendar event %s for event %s", e.GoogleCalendarEventID, e.ID)
		}
	}

	log.WithField("event_id", e.ID).Info("Event deleted successfully")
	return nil
}

func (s *eventService) ExportICS(ctx context.Context) ([]byte, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(buildICS(events, s.now())), nil
}

// syncCalendar mirrors e to Google Calendar. Failures are logged and never
// fail the operation.
func (s *eventService) syncCalendar(ctx context.Context, log logrus.FieldLogger, e *Event) {
	var existing *string
	if e.GoogleCalendarEventID != "" {
		existing = &e.GoogleCalendarEventID
	}

	eventID, err := s.calendarManager.SyncEvent(ctx, &googlecalendar.CalendarEvent{
		ID:                    e.ID,
		Name:                  e.Name,
		Description:           e.Description,
		Location:              e.Location,
		MeetingLink:           e.MeetingLink,
		StartDate:             util.ToTimePtr(&e.StartDate),
		EndDate:               util.ToTimePtr(&e.EndDate),
		GoogleCalendarEventID: existing,
	})
	if err != nil {
		log.WithError(err).Warnf("Failed to sync event %s to Google Calendar", e.ID)
		return
	}

	if eventID != e.GoogleCalendarEventID {
		e.GoogleCalendarEventID = eventID
		if err := s.repo.Update(e); err != nil {
			log.WithError(err).Error("Failed to update event with Google Calendar Event ID")
		}
	}
}
