package task

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/event"
)

type fakeEvents struct {
	event.EventService
	known uuid.UUID
}

func (f *fakeEvents) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, event.ErrInvalidID
	}
	if eventID != f.known {
		return nil, event.ErrEventNotFound
	}
	return &event.Event{ID: eventID}, nil
}

type fakeRepo struct {
	tasks    map[uuid.UUID]Task
	subtasks map[uuid.UUID]Subtask
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tasks:    map[uuid.UUID]Task{},
		subtasks: map[uuid.UUID]Subtask{},
	}
}

func (r *fakeRepo) Create(t *Task) error {
	r.tasks[t.ID] = *t
	return nil
}

func (r *fakeRepo) Update(t *Task) error {
	stored := *t
	stored.Subtasks = nil
	r.tasks[t.ID] = stored
	return nil
}

func (r *fakeRepo) FindByID(id uuid.UUID) (*Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	t.Subtasks, _ = r.ListSubtasks(id)
	return &t, nil
}

func (r *fakeRepo) ListByEvent(eventID uuid.UUID) ([]*Task, error) {
	var out []*Task
	for _, t := range r.tasks {
		if t.EventID == eventID {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) CreateSubtask(st *Subtask) error {
	r.subtasks[st.ID] = *st
	return nil
}

func (r *fakeRepo) UpdateSubtask(st *Subtask) error {
	r.subtasks[st.ID] = *st
	return nil
}

func (r *fakeRepo) FindSubtaskByID(id uuid.UUID) (*Subtask, error) {
	st, ok := r.subtasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &st, nil
}

func (r *fakeRepo) ListSubtasks(taskID uuid.UUID) ([]Subtask, error) {
	var out []Subtask
	for _, st := range r.subtasks {
		if st.TaskID == taskID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func newTestService(eventID uuid.UUID) (*taskService, *fakeRepo) {
	repo := newFakeRepo()
	svc := &taskService{
		repo:         repo,
		eventService: &fakeEvents{known: eventID},
		now: func() time.Time {
			// 01:30 UTC is still the previous day in São Paulo.
			return time.Date(2024, time.March, 6, 1, 30, 0, 0, time.UTC)
		},
	}
	return svc, repo
}

func useLocation(t interface{ Cleanup(func()) }, loc *time.Location) {
	prev := config.Location
	config.Location = loc
	t.Cleanup(func() { config.Location = prev })
}
