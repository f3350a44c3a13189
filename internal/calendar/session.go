package calendar

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

var ErrEventNotLoaded = errors.New("event is not on the calendar")

// Renderer receives every grid the session computes.
type Renderer func(Grid)

// Confirmer asks the user to approve a change before it is committed.
type Confirmer func(ctx context.Context, prompt string) bool

// Session is one user's calendar: the loaded events, the current view state
// and the grid derived from them. Every mutation recomputes the grid and hands
// it to the renderer before returning.
//
// A Session is not safe for concurrent use.
type Session struct {
	source   EventSource
	notifier notification.Notifier
	now      func() time.Time
	render   Renderer

	state   ViewState
	events  []Event
	working []Event
	grid    Grid
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.render = r }
}

func WithNotifier(n notification.Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

func WithState(state ViewState) Option {
	return func(s *Session) { s.state = state }
}

func NewSession(source EventSource, opts ...Option) *Session {
	s := &Session{
		source:   source,
		notifier: notification.LogNotifier{},
		now: func() time.Time {
			return time.Now().In(config.Location)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.state.Year == 0 {
		s.state = NewViewState(s.now())
	}
	s.refresh()
	return s
}

func (s *Session) State() ViewState { return s.state }
func (s *Session) Grid() Grid       { return s.grid }

func (s *Session) location() *time.Location {
	return s.now().Location()
}

// Load replaces the events with a fresh fetch. On failure the previous events
// stay in place.
func (s *Session) Load(ctx context.Context) error {
	events, err := s.source.FetchEvents(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Error loading events")
		notification.Error(ctx, s.notifier, "Error loading events", err)
		return err
	}

	s.events = events
	s.working = events
	s.refresh()
	return nil
}

// Dispatch applies a user input and recomputes the grid.
func (s *Session) Dispatch(in Input) (Grid, error) {
	next, err := Reduce(s.state, in)
	if err != nil {
		return s.grid, err
	}

	switch in.(type) {
	case CategorySelected, SearchEntered:
		// Local filtering always starts again from the full list.
		s.working = s.events
	}

	s.state = next
	s.refresh()
	return s.grid, nil
}

// SearchRemote asks the data source for events by name and shows only those.
// An empty name restores the full list.
func (s *Session) SearchRemote(ctx context.Context, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		s.working = s.events
		s.refresh()
		return nil
	}

	results, err := s.source.SearchEvents(ctx, name)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Error searching events")
		notification.Error(ctx, s.notifier, "Error searching events", err)
		return err
	}

	s.working = results
	s.refresh()
	return nil
}

// MoveEvent changes an event's start date after the user confirms. A declined
// confirmation leaves everything untouched and reports false. A failed update
// is reported but not rolled back.
func (s *Session) MoveEvent(ctx context.Context, eventID string, date util.LocalDate, confirm Confirmer) (bool, error) {
	log := config.WithContext(ctx).WithField("event_id", eventID)

	if !s.hasEvent(eventID) {
		return false, ErrEventNotLoaded
	}
	if confirm != nil && !confirm(ctx, "Do you want to update the event?") {
		log.Info("Event move cancelled")
		return false, nil
	}

	if err := s.source.UpdateEventDate(ctx, eventID, date); err != nil {
		log.WithError(err).Error("Error updating event date")
		notification.Error(ctx, s.notifier, "Error moving event", err)
		return false, err
	}

	notification.Success(ctx, s.notifier, "Event moved successfully!")
	log.WithField("new_start_date", date.String()).Info("Event moved")

	// The move is committed even when the refresh fails; Load toasts the error.
	if err := s.Load(ctx); err != nil {
		log.WithError(err).Warn("Calendar not refreshed after move")
	}
	return true, nil
}

// CreateEvent validates the draft locally and, when valid, creates the event
// and reloads the calendar. Invalid drafts never reach the data source.
func (s *Session) CreateEvent(ctx context.Context, draft EventDraft) (string, error) {
	fields, err := draft.Validate(s.location())
	if err != nil {
		notification.Error(ctx, s.notifier, "Validation Error", err)
		return "", err
	}

	id, err := s.source.CreateEvent(ctx, fields)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Error creating event")
		notification.Error(ctx, s.notifier, "Error creating event", err)
		return "", err
	}

	notification.Success(ctx, s.notifier, "Event created successfully!")
	// The event exists even when the refresh fails; Load toasts the error.
	if err := s.Load(ctx); err != nil {
		config.WithContext(ctx).WithError(err).WithField("event_id", id).Warn("Calendar not refreshed after create")
	}
	return id, nil
}

func (s *Session) hasEvent(id string) bool {
	for _, e := range s.events {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (s *Session) refresh() {
	s.grid = Build(s.working, s.state, s.now())
	if s.render != nil {
		s.render(s.grid)
	}
}
