package calendar_test

import (
	"context"
	"strings"
	"time"

	"github.com/saulo-duarte/chronos-events/internal/calendar"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

var brt = time.FixedZone("BRT", -3*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, brt)
}

func ev(id, name, category string, start time.Time) calendar.Event {
	return calendar.Event{ID: id, Name: name, Category: category, Start: start, End: start.Add(time.Hour)}
}

type fakeSource struct {
	events     []calendar.Event
	fetchErr   error
	searchErr  error
	updateErr  error
	createErr  error
	fetchCalls int
	updates    map[string]util.LocalDate
	created    []calendar.EventFields
}

func (f *fakeSource) FetchEvents(ctx context.Context) ([]calendar.Event, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]calendar.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeSource) SearchEvents(ctx context.Context, name string) ([]calendar.Event, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []calendar.Event
	for _, e := range f.events {
		if strings.Contains(strings.ToLower(e.Name), strings.ToLower(name)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSource) UpdateEventDate(ctx context.Context, eventID string, newStartDate util.LocalDate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updates == nil {
		f.updates = map[string]util.LocalDate{}
	}
	f.updates[eventID] = newStartDate
	for i, e := range f.events {
		if e.ID == eventID {
			s := e.Start
			f.events[i].Start = time.Date(newStartDate.Year, newStartDate.Month, newStartDate.Day, s.Hour(), s.Minute(), 0, 0, s.Location())
		}
	}
	return nil
}

func (f *fakeSource) CreateEvent(ctx context.Context, fields calendar.EventFields) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, fields)
	id := "new-" + fields.Name
	f.events = append(f.events, calendar.Event{ID: id, Name: fields.Name, Category: fields.Category, Start: fields.Start, End: fields.End})
	return id, nil
}
