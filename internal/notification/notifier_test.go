package notification_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/chronos-events/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	t.Run("PublicMessage", func(t *testing.T) {
		err := notification.NewPublicError("Event not found", errors.New("record not found"))
		assert.Equal(t, "Event not found", notification.Message(err))
	})

	t.Run("WrappedPublicMessage", func(t *testing.T) {
		err := fmt.Errorf("update date: %w", notification.NewPublicError("Start date is required", nil))
		assert.Equal(t, "Start date is required", notification.Message(err))
	})

	t.Run("PlainErrorFallsBack", func(t *testing.T) {
		assert.Equal(t, notification.UnknownErrorMessage, notification.Message(errors.New("pq: connection refused")))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Empty(t, notification.Message(nil))
	})
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	rec := notification.NewRecorder(notification.LogNotifier{})

	notification.Success(ctx, rec, "Event moved successfully!")
	notification.Error(ctx, rec, "Error creating event", errors.New("boom"))

	toasts := rec.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, notification.Toast{Title: "Success", Message: "Event moved successfully!", Severity: notification.SeveritySuccess}, toasts[0])
	assert.Equal(t, notification.SeverityError, toasts[1].Severity)
	assert.Equal(t, notification.UnknownErrorMessage, toasts[1].Message)
}

func TestMiddleware(t *testing.T) {
	var env notification.Envelope
	h := notification.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := notification.FromContext(r.Context())
		n.Notify(r.Context(), "Success", "RSVP successfully submitted!", notification.SeveritySuccess)
		env = notification.Wrap(r.Context(), "ok")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/rsvps", nil))

	assert.Equal(t, "ok", env.Data)
	require.Len(t, env.Toasts, 1)
	assert.Equal(t, "RSVP successfully submitted!", env.Toasts[0].Message)

	_, isLog := notification.FromContext(context.Background()).(notification.LogNotifier)
	assert.True(t, isLog)
	assert.Empty(t, notification.Wrap(context.Background(), nil).Toasts)
}
