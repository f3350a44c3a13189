package googlecalendar

import (
	"github.com/saulo-duarte/chronos-events/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

type GoogleCalendarContainer struct {
	CalendarManager CalendarManager
}

// NewGoogleCalendarContainer mirrors events to Google Calendar when the client
// credentials and refresh token are present, and does nothing otherwise.
func NewGoogleCalendarContainer() *GoogleCalendarContainer {
	clientID := config.Getenv("GOOGLE_CLIENT_ID", "")
	clientSecret := config.Getenv("GOOGLE_CLIENT_SECRET", "")
	refreshToken := config.Getenv("GOOGLE_REFRESH_TOKEN", "")

	if clientID == "" || clientSecret == "" || refreshToken == "" {
		config.Logger.Info("Google Calendar sync disabled")
		return &GoogleCalendarContainer{CalendarManager: NewNoopManager()}
	}

	config.InitCrypto()

	oauthConfig := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	calendarService := NewCalendarService(oauthConfig, refreshToken, config.Getenv("GOOGLE_CALENDAR_ID", defaultCalendarID))

	return &GoogleCalendarContainer{
		CalendarManager: NewCalendarManager(calendarService),
	}
}
