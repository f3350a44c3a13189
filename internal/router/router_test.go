package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/chronos-events/internal/auth"
	"github.com/saulo-duarte/chronos-events/internal/budget"
	"github.com/saulo-duarte/chronos-events/internal/calendar"
	"github.com/saulo-duarte/chronos-events/internal/event"
	"github.com/saulo-duarte/chronos-events/internal/router"
	"github.com/saulo-duarte/chronos-events/internal/rsvp"
	"github.com/saulo-duarte/chronos-events/internal/task"
	"github.com/saulo-duarte/chronos-events/internal/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Setenv("JWT_SECRET", "router-test-secret")
	t.Setenv("CORS_ORIGINS", "https://events.example.com")
	auth.Init()

	return router.New(router.RouterConfig{
		CalendarHandler: calendar.NewHandler(nil),
		EventHandler:    event.NewHandler(nil),
		RSVPHandler:     rsvp.NewHandler(nil),
		TicketHandler:   ticket.NewHandler(nil),
		TaskHandler:     task.NewHandler(nil),
		BudgetHandler:   budget.NewHandler(nil),
	})
}

func TestRoutesRegistered(t *testing.T) {
	h := newRouter(t)

	routes, ok := h.(chi.Routes)
	require.True(t, ok)

	registered := map[string]bool{}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+strings.TrimSuffix(route, "/")] = true
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"GET /calendar",
		"POST /calendar/view",
		"POST /calendar/events/{id}/move",
		"GET /events",
		"GET /events/export.ics",
		"PATCH /events/{id}/date",
		"DELETE /events/{id}",
		"POST /rsvps",
		"PATCH /rsvps/{id}/toggle",
		"POST /tickets",
		"POST /tasks/{id}/subtasks",
		"PATCH /subtasks/{id}/toggle",
		"GET /events/{id}/attendees",
		"GET /events/{id}/tickets",
		"GET /events/{id}/tasks",
		"PUT /budgets/{eventId}",
		"PATCH /budgets/{eventId}/lock",
		"POST /budgets/{eventId}/expenses",
		"POST /auth/logout",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestAuthRequired(t *testing.T) {
	h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/types", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: "3f1c0a52-8f0e-4b8a-9a53-5b1f3f1e2a10",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("router-test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/events/types?kind=party", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Club Party")
	assert.NotContains(t, rec.Body.String(), "Webinar")
}

func TestPreflightAndLogout(t *testing.T) {
	h := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/events", nil)
	req.Header.Set("Origin", "https://events.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://events.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "jwt=")
}
