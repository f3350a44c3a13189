package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saulo-duarte/chronos-events/internal/calendar"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	source   *fakeSource
	recorder *notification.Recorder
	renders  []calendar.Grid
	session  *calendar.Session
}

func newSessionFixture(t *testing.T, events ...calendar.Event) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		source:   &fakeSource{events: events},
		recorder: notification.NewRecorder(nil),
	}
	f.session = calendar.NewSession(f.source,
		calendar.WithClock(func() time.Time { return at(2024, time.March, 5, 9, 0) }),
		calendar.WithNotifier(f.recorder),
		calendar.WithRenderer(func(g calendar.Grid) { f.renders = append(f.renders, g) }),
	)
	return f
}

func cellOn(g calendar.Grid, date string) calendar.Cell {
	for _, c := range g.Cells {
		if c.Date == date {
			return c
		}
	}
	return calendar.Cell{}
}

func marchEvents() []calendar.Event {
	return []calendar.Event{
		ev("a", "Alpha", "Music", at(2024, time.March, 5, 10, 0)),
		ev("b", "Beta", "Wedding", at(2024, time.March, 5, 18, 0)),
		ev("g", "Gamma", "Music", at(2024, time.March, 6, 10, 0)),
	}
}

func TestSessionLoad(t *testing.T) {
	f := newSessionFixture(t, marchEvents()...)
	require.Len(t, f.renders, 1, "initial grid is rendered")
	assert.Equal(t, "March 2024", f.session.Grid().Title)

	require.NoError(t, f.session.Load(context.Background()))
	require.Len(t, f.renders, 2)
	assert.Equal(t, []string{"a", "b"}, ids(cellOn(f.session.Grid(), "2024-03-05").Events))
	assert.Empty(t, f.recorder.Toasts())
}

func TestSessionLoadFailureKeepsEvents(t *testing.T) {
	f := newSessionFixture(t, marchEvents()...)
	ctx := context.Background()
	require.NoError(t, f.session.Load(ctx))

	f.source.fetchErr = errors.New("connection reset")
	err := f.session.Load(ctx)
	require.Error(t, err)

	assert.Len(t, cellOn(f.session.Grid(), "2024-03-05").Events, 2)
	toasts := f.recorder.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Error loading events", toasts[0].Title)
	assert.Equal(t, notification.UnknownErrorMessage, toasts[0].Message)
	assert.Equal(t, notification.SeverityError, toasts[0].Severity)
}

func TestSessionDispatch(t *testing.T) {
	f := newSessionFixture(t, marchEvents()...)
	require.NoError(t, f.session.Load(context.Background()))

	g, err := f.session.Dispatch(calendar.CategorySelected{Category: "Music"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(cellOn(g, "2024-03-05").Events))
	assert.Equal(t, []string{"g"}, ids(cellOn(g, "2024-03-06").Events))

	g, err = f.session.Dispatch(calendar.SearchEntered{Term: "GAM"})
	require.NoError(t, err)
	assert.Empty(t, cellOn(g, "2024-03-05").Events)
	assert.Equal(t, []string{"g"}, ids(cellOn(g, "2024-03-06").Events))

	g, err = f.session.Dispatch(calendar.ViewSwitched{View: calendar.ViewDaily})
	require.NoError(t, err)
	require.Len(t, g.Cells, 1)
	assert.Equal(t, "2024-03-05", g.Cells[0].Date)

	g, err = f.session.Dispatch(calendar.Navigated{Direction: calendar.Next})
	require.NoError(t, err)
	assert.Equal(t, []string{"g"}, ids(g.Cells[0].Events))

	assert.Equal(t, g, f.renders[len(f.renders)-1], "last render is the current grid")

	before := len(f.renders)
	_, err = f.session.Dispatch(calendar.ViewSwitched{View: "hourly"})
	assert.ErrorIs(t, err, calendar.ErrInvalidView)
	assert.Len(t, f.renders, before, "rejected input does not render")
}

func TestSessionSearchRemote(t *testing.T) {
	f := newSessionFixture(t, marchEvents()...)
	ctx := context.Background()
	require.NoError(t, f.session.Load(ctx))

	require.NoError(t, f.session.SearchRemote(ctx, "beta"))
	assert.Equal(t, []string{"b"}, ids(cellOn(f.session.Grid(), "2024-03-05").Events))
	assert.Empty(t, cellOn(f.session.Grid(), "2024-03-06").Events)

	require.NoError(t, f.session.SearchRemote(ctx, "  "))
	assert.Len(t, cellOn(f.session.Grid(), "2024-03-05").Events, 2)
	assert.Len(t, cellOn(f.session.Grid(), "2024-03-06").Events, 1)

	f.source.searchErr = errors.New("timeout")
	require.Error(t, f.session.SearchRemote(ctx, "alpha"))
	require.Len(t, f.recorder.Toasts(), 1)
	assert.Equal(t, "Error searching events", f.recorder.Toasts()[0].Title)
}

func TestSessionMoveEvent(t *testing.T) {
	ctx := context.Background()
	target := util.LocalDate{Year: 2024, Month: time.March, Day: 20}

	t.Run("Confirmed", func(t *testing.T) {
		f := newSessionFixture(t, marchEvents()...)
		require.NoError(t, f.session.Load(ctx))

		moved, err := f.session.MoveEvent(ctx, "a", target, func(context.Context, string) bool { return true })
		require.NoError(t, err)
		assert.True(t, moved)
		assert.Equal(t, target, f.source.updates["a"])

		assert.Equal(t, []string{"a"}, ids(cellOn(f.session.Grid(), "2024-03-20").Events))
		toasts := f.recorder.Toasts()
		require.Len(t, toasts, 1)
		assert.Equal(t, "Event moved successfully!", toasts[0].Message)
		assert.Equal(t, notification.SeveritySuccess, toasts[0].Severity)
	})

	t.Run("Declined", func(t *testing.T) {
		f := newSessionFixture(t, marchEvents()...)
		require.NoError(t, f.session.Load(ctx))
		fetches := f.source.fetchCalls

		var prompt string
		moved, err := f.session.MoveEvent(ctx, "a", target, func(_ context.Context, p string) bool {
			prompt = p
			return false
		})
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, "Do you want to update the event?", prompt)
		assert.Empty(t, f.source.updates)
		assert.Equal(t, fetches, f.source.fetchCalls)
		assert.Empty(t, f.recorder.Toasts())
	})

	t.Run("UpdateFails", func(t *testing.T) {
		f := newSessionFixture(t, marchEvents()...)
		require.NoError(t, f.session.Load(ctx))
		f.source.updateErr = notification.NewPublicError("Event not found", errors.New("record not found"))

		moved, err := f.session.MoveEvent(ctx, "a", target, nil)
		require.Error(t, err)
		assert.False(t, moved)

		toasts := f.recorder.Toasts()
		require.Len(t, toasts, 1)
		assert.Equal(t, "Error moving event", toasts[0].Title)
		assert.Equal(t, "Event not found", toasts[0].Message)
		assert.Equal(t, []string{"a", "b"}, ids(cellOn(f.session.Grid(), "2024-03-05").Events))
	})

	t.Run("UnknownEvent", func(t *testing.T) {
		f := newSessionFixture(t, marchEvents()...)
		require.NoError(t, f.session.Load(ctx))

		_, err := f.session.MoveEvent(ctx, "zzz", target, nil)
		assert.ErrorIs(t, err, calendar.ErrEventNotLoaded)
		assert.Empty(t, f.source.updates)
	})
}

func TestSessionCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		f := newSessionFixture(t)

		id, err := f.session.CreateEvent(ctx, validDraft())
		require.NoError(t, err)
		assert.Equal(t, "new-Annual Gala", id)
		require.Len(t, f.source.created, 1)
		assert.Equal(t, "Main Hall", f.source.created[0].Location)

		assert.Equal(t, []string{id}, ids(cellOn(f.session.Grid(), "2024-03-05").Events))
		toasts := f.recorder.Toasts()
		require.Len(t, toasts, 1)
		assert.Equal(t, "Event created successfully!", toasts[0].Message)
	})

	t.Run("InvalidNeverReachesSource", func(t *testing.T) {
		f := newSessionFixture(t)
		d := validDraft()
		d.Location = ""

		_, err := f.session.CreateEvent(ctx, d)
		assert.ErrorIs(t, err, calendar.ErrValidation)
		assert.Empty(t, f.source.created)
		assert.Zero(t, f.source.fetchCalls)

		toasts := f.recorder.Toasts()
		require.Len(t, toasts, 1)
		assert.Equal(t, "Validation Error", toasts[0].Title)
		assert.Equal(t, "Location is required", toasts[0].Message)
	})

	t.Run("SourceFails", func(t *testing.T) {
		f := newSessionFixture(t)
		f.source.createErr = errors.New("duplicate key")

		_, err := f.session.CreateEvent(ctx, validDraft())
		require.Error(t, err)
		toasts := f.recorder.Toasts()
		require.Len(t, toasts, 1)
		assert.Equal(t, "Error creating event", toasts[0].Title)
		assert.Equal(t, notification.UnknownErrorMessage, toasts[0].Message)
	})
}

func TestSessionReloadFailureAfterCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("Move", func(t *testing.T) {
		f := newSessionFixture(t, marchEvents()...)
		require.NoError(t, f.session.Load(ctx))
		f.source.fetchErr = errors.New("connection reset")

		moved, err := f.session.MoveEvent(ctx, "a", util.LocalDate{Year: 2024, Month: time.March, Day: 20}, nil)
		require.NoError(t, err)
		assert.True(t, moved)
		assert.Contains(t, f.source.updates, "a")

		toasts := f.recorder.Toasts()
		require.Len(t, toasts, 2)
		assert.Equal(t, "Event moved successfully!", toasts[0].Message)
		assert.Equal(t, "Error loading events", toasts[1].Title)
		assert.Equal(t, []string{"a", "b"}, ids(cellOn(f.session.Grid(), "2024-03-05").Events))
	})

	t.Run("Create", func(t *testing.T) {
		f := newSessionFixture(t)
		f.source.fetchErr = errors.New("connection reset")

		id, err := f.session.CreateEvent(ctx, validDraft())
		require.NoError(t, err)
		assert.Equal(t, "new-Annual Gala", id)

		toasts := f.recorder.Toasts()
		require.Len(t, toasts, 2)
		assert.Equal(t, "Event created successfully!", toasts[0].Message)
		assert.Equal(t, "Error loading events", toasts[1].Title)
	})
}
