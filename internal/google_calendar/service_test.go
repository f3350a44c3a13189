package googlecalendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

type fakeGoogle struct {
	*httptest.Server
	inserted []map[string]interface{}
	deleted  []string
}

func newFakeGoogle(t *testing.T) *fakeGoogle {
	t.Helper()
	f := &fakeGoogle{}
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh-me", r.PostForm.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access","token_type":"Bearer","expires_in":3600}`))
	})

	mux.HandleFunc("/calendars/team/events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.inserted = append(f.inserted, body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"google-123"}`))
	})

	mux.HandleFunc("/calendars/team/events/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/calendars/team/events/")
		if r.Method == http.MethodDelete {
			f.deleted = append(f.deleted, id)
			if id == "gone" {
				http.Error(w, `{"error":{"code":404,"message":"Not Found"}}`, http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + id + `"}`))
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func newTestService(t *testing.T, f *fakeGoogle) CalendarService {
	t.Helper()
	t.Setenv("CRYPTO_KEY", "0123456789abcdef0123456789abcdef")
	config.InitCrypto()

	encrypted, err := config.Encrypt("refresh-me")
	require.NoError(t, err)

	oauthConfig := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: f.URL + "/token"},
	}
	return NewCalendarService(oauthConfig, encrypted, "team", option.WithEndpoint(f.URL+"/"))
}

func TestCalendarServiceAddEvent(t *testing.T) {
	f := newFakeGoogle(t)
	svc := newTestService(t, f)

	start := time.Date(2024, time.March, 5, 18, 0, 0, 0, time.UTC)
	id, err := svc.AddEventToCalendar(context.Background(), &CalendarEvent{ID: uuid.New(), Name: "Gala", StartDate: &start})

	require.NoError(t, err)
	assert.Equal(t, "google-123", id)
	require.Len(t, f.inserted, 1)
	assert.Equal(t, "Gala", f.inserted[0]["summary"])
}

func TestCalendarServiceDeleteEvent(t *testing.T) {
	f := newFakeGoogle(t)
	svc := newTestService(t, f)

	require.NoError(t, svc.DeleteEventFromCalendar(context.Background(), "abc"))
	require.NoError(t, svc.DeleteEventFromCalendar(context.Background(), "gone"))
	assert.Equal(t, []string{"abc", "gone"}, f.deleted)
}

func TestCalendarServiceWithoutToken(t *testing.T) {
	svc := NewCalendarService(&oauth2.Config{}, "", "")

	start := time.Now()
	_, err := svc.AddEventToCalendar(context.Background(), &CalendarEvent{StartDate: &start})
	assert.ErrorIs(t, err, ErrMissingCalendarTokens)

	assert.NoError(t, svc.DeleteEventFromCalendar(context.Background(), "abc"))
	assert.ErrorIs(t, svc.UpdateEventInCalendar(context.Background(), &CalendarEvent{StartDate: &start}), ErrMissingEventID)
}
