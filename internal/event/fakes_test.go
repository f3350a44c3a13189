package event

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	googlecalendar "github.com/saulo-duarte/chronos-events/internal/google_calendar"
)

type fakeRepo struct {
	mu      sync.Mutex
	events  map[uuid.UUID]*Event
	updates int
	err     error
}

func newFakeRepo(events ...*Event) *fakeRepo {
	r := &fakeRepo{events: map[uuid.UUID]*Event{}}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeRepo) Create(e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeRepo) Update(e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.updates++
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeRepo) FindByID(id uuid.UUID) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) filter(keep func(*Event) bool) ([]*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*Event
	for _, e := range r.events {
		if keep(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate.Time) })
	return out, nil
}

func (r *fakeRepo) List() ([]*Event, error) {
	return r.filter(func(*Event) bool { return true })
}

func (r *fakeRepo) ListByKind(kind Kind) ([]*Event, error) {
	return r.filter(func(e *Event) bool { return e.Kind == kind })
}

func (r *fakeRepo) SearchByName(name string) ([]*Event, error) {
	name = strings.ToLower(name)
	return r.filter(func(e *Event) bool { return strings.Contains(strings.ToLower(e.Name), name) })
}

type fakeManager struct {
	synced  []*googlecalendar.CalendarEvent
	removed []string
	id      string
	err     error
}

func (m *fakeManager) SyncEvent(ctx context.Context, ev *googlecalendar.CalendarEvent) (string, error) {
	m.synced = append(m.synced, ev)
	if m.err != nil {
		return "", m.err
	}
	if ev.GoogleCalendarEventID != nil {
		return *ev.GoogleCalendarEventID, nil
	}
	return m.id, nil
}

func (m *fakeManager) RemoveEvent(ctx context.Context, eventID string) error {
	m.removed = append(m.removed, eventID)
	return m.err
}
