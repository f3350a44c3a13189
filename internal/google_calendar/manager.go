package googlecalendar

import (
	"context"

	"github.com/saulo-duarte/chronos-events/internal/config"
)

type CalendarManager interface {
	SyncEvent(ctx context.Context, ev *CalendarEvent) (eventID string, err error)
	RemoveEvent(ctx context.Context, eventID string) error
}

type calendarManager struct {
	calendarService CalendarService
}

func NewCalendarManager(calendarService CalendarService) CalendarManager {
	return &calendarManager{
		calendarService: calendarService,
	}
}

// SyncEvent creates, updates or deletes the mirrored Google event so that it
// matches ev, and returns the Google event id that should be stored.
func (m *calendarManager) SyncEvent(ctx context.Context, ev *CalendarEvent) (string, error) {
	log := config.WithContext(ctx)

	hasValidDates := ev.StartDate != nil || ev.EndDate != nil
	hasEventID := ev.GoogleCalendarEventID != nil && *ev.GoogleCalendarEventID != ""

	if hasEventID && !hasValidDates {
		log.Infof("Event %s no longer has valid dates, deleting calendar event", ev.ID)
		if err := m.calendarService.DeleteEventFromCalendar(ctx, *ev.GoogleCalendarEventID); err != nil {
			log.WithError(err).Warnf("Failed to delete calendar event for event %s", ev.ID)
		}
		return "", nil
	}

	if !hasValidDates {
		return "", nil
	}

	if hasEventID {
		if err := m.calendarService.UpdateEventInCalendar(ctx, ev); err != nil {
			log.WithError(err).Warnf("Failed to update calendar event for event %s", ev.ID)
			return *ev.GoogleCalendarEventID, err
		}
		return *ev.GoogleCalendarEventID, nil
	}

	eventID, err := m.calendarService.AddEventToCalendar(ctx, ev)
	if err != nil {
		log.WithError(err).Warnf("Failed to create calendar event for event %s", ev.ID)
		return "", err
	}

	if eventID == "" {
		log.Warnf("Calendar service returned empty event ID for event %s", ev.ID)
		return "", nil
	}

	log.Infof("Created calendar event %s for event %s", eventID, ev.ID)
	return eventID, nil
}

func (m *calendarManager) RemoveEvent(ctx context.Context, eventID string) error {
	if eventID == "" {
		return nil
	}

	log := config.WithContext(ctx)

	if err := m.calendarService.DeleteEventFromCalendar(ctx, eventID); err != nil {
		log.WithError(err).Warnf("Failed to delete calendar event %s", eventID)
		return err
	}

	return nil
}

// noopManager is used when Google Calendar mirroring is not configured.
type noopManager struct{}

func NewNoopManager() CalendarManager { return noopManager{} }

func (noopManager) SyncEvent(ctx context.Context, ev *CalendarEvent) (string, error) {
	if ev.GoogleCalendarEventID != nil {
		return *ev.GoogleCalendarEventID, nil
	}
	return "", nil
}

func (noopManager) RemoveEvent(ctx context.Context, eventID string) error { return nil }
