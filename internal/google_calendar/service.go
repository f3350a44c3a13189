package googlecalendar

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/saulo-duarte/chronos-events/internal/config"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

var (
	ErrDecryptionFailed      = errors.New("failed to decrypt google refresh token")
	ErrMissingCalendarTokens = errors.New("no google refresh token configured")
	ErrMissingEventID        = errors.New("cannot update event: missing Google Calendar Event ID")
)

type CalendarService interface {
	AddEventToCalendar(ctx context.Context, ev *CalendarEvent) (string, error)
	UpdateEventInCalendar(ctx context.Context, ev *CalendarEvent) error
	DeleteEventFromCalendar(ctx context.Context, googleEventID string) error
}

type calendarService struct {
	oauthConfig           *oauth2.Config
	encryptedRefreshToken string
	calendarID            string
	clientOptions         []option.ClientOption
}

// NewCalendarService mirrors events to one shared calendar, authenticated with
// an encrypted refresh token. clientOptions are appended when building the API
// client.
func NewCalendarService(oauthConfig *oauth2.Config, encryptedRefreshToken, calendarID string, clientOptions ...option.ClientOption) CalendarService {
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	return &calendarService{
		oauthConfig:           oauthConfig,
		encryptedRefreshToken: encryptedRefreshToken,
		calendarID:            calendarID,
		clientOptions:         clientOptions,
	}
}

func (s *calendarService) getCalendarClient(ctx context.Context) (*gcal.Service, error) {
	log := config.WithContext(ctx)

	if s.encryptedRefreshToken == "" {
		return nil, ErrMissingCalendarTokens
	}

	refreshToken, err := config.Decrypt(s.encryptedRefreshToken)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt refresh token")
		return nil, ErrDecryptionFailed
	}

	token := &oauth2.Token{
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}

	tokenSource := s.oauthConfig.TokenSource(ctx, token)
	if _, err := tokenSource.Token(); err != nil {
		log.WithError(err).Error("Failed to refresh Google token")
		return nil, err
	}

	client := oauth2.NewClient(ctx, tokenSource)
	opts := append([]option.ClientOption{option.WithHTTPClient(client)}, s.clientOptions...)
	srv, err := gcal.NewService(ctx, opts...)
	if err != nil {
		log.WithError(err).Error("Failed to create Calendar service client")
		return nil, err
	}

	return srv, nil
}

func buildCalendarEvent(ev *CalendarEvent) *gcal.Event {
	event := &gcal.Event{
		Summary:     ev.Name,
		Description: ev.Description,
		Location:    ev.Location,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
		},
	}

	if ev.MeetingLink != "" {
		event.Source = &gcal.EventSource{Title: "Meeting link", Url: ev.MeetingLink}
	}

	if ev.EndDate != nil {
		event.End = &gcal.EventDateTime{
			DateTime: ev.EndDate.Format(time.RFC3339),
		}
		if ev.StartDate == nil {
			event.Start = &gcal.EventDateTime{
				DateTime: ev.EndDate.Add(-time.Hour).Format(time.RFC3339),
			}
		}
	}

	if ev.StartDate != nil {
		event.Start = &gcal.EventDateTime{
			DateTime: ev.StartDate.Format(time.RFC3339),
		}
		if ev.EndDate == nil {
			event.End = &gcal.EventDateTime{
				DateTime: ev.StartDate.Add(time.Hour).Format(time.RFC3339),
			}
		}
	}

	if event.Start == nil || event.End == nil {
		return nil
	}

	return event
}

func (s *calendarService) AddEventToCalendar(ctx context.Context, ev *CalendarEvent) (string, error) {
	log := config.WithContext(ctx)

	event := buildCalendarEvent(ev)
	if event == nil {
		log.Warnf("Event %s has no valid dates to create a calendar event", ev.ID)
		return "", nil
	}

	srv, err := s.getCalendarClient(ctx)
	if err != nil {
		return "", err
	}

	calEvent, err := srv.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Failed to insert calendar event")
		return "", err
	}

	return calEvent.Id, nil
}

func (s *calendarService) UpdateEventInCalendar(ctx context.Context, ev *CalendarEvent) error {
	log := config.WithContext(ctx)
	if ev.GoogleCalendarEventID == nil || *ev.GoogleCalendarEventID == "" {
		return ErrMissingEventID
	}

	event := buildCalendarEvent(ev)
	if event == nil {
		log.Warnf("Event %s no longer has valid dates, attempting to delete calendar event", ev.ID)
		return s.DeleteEventFromCalendar(ctx, *ev.GoogleCalendarEventID)
	}

	srv, err := s.getCalendarClient(ctx)
	if err != nil {
		return err
	}

	_, err = srv.Events.Update(s.calendarID, *ev.GoogleCalendarEventID, event).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Failed to update calendar event")
		return err
	}

	return nil
}

func (s *calendarService) DeleteEventFromCalendar(ctx context.Context, googleEventID string) error {
	log := config.WithContext(ctx)
	srv, err := s.getCalendarClient(ctx)
	if err != nil {
		if errors.Is(err, ErrMissingCalendarTokens) || errors.Is(err, ErrDecryptionFailed) {
			log.Warnf("Skipping Google Calendar deletion for event %s due to missing/invalid token", googleEventID)
			return nil
		}
		return err
	}

	err = srv.Events.Delete(s.calendarID, googleEventID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			log.Warnf("Calendar event %s not found on Google, considering deleted.", googleEventID)
			return nil
		}
		log.WithError(err).Error("Failed to delete calendar event")
		return err
	}

	return nil
}
