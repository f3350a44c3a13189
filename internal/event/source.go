package event

import (
	"context"

	"github.com/saulo-duarte/chronos-events/internal/calendar"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

// Source exposes the event service as the calendar's data source.
type Source struct {
	service EventService
}

func NewSource(service EventService) *Source {
	return &Source{service: service}
}

func (s *Source) FetchEvents(ctx context.Context) ([]calendar.Event, error) {
	events, err := s.service.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return toCalendar(events), nil
}

func (s *Source) SearchEvents(ctx context.Context, name string) ([]calendar.Event, error) {
	events, err := s.service.SearchEvents(ctx, name)
	if err != nil {
		return nil, err
	}
	return toCalendar(events), nil
}

func (s *Source) UpdateEventDate(ctx context.Context, eventID string, newStartDate util.LocalDate) error {
	_, err := s.service.UpdateEventDate(ctx, eventID, newStartDate)
	return err
}

func (s *Source) CreateEvent(ctx context.Context, fields calendar.EventFields) (string, error) {
	e, err := s.service.CreateEvent(ctx, fields)
	if err != nil {
		return "", err
	}
	return e.ID.String(), nil
}

func toCalendar(events []*Event) []calendar.Event {
	out := make([]calendar.Event, 0, len(events))
	for _, e := range events {
		out = append(out, e.ToCalendar())
	}
	return out
}
