package calendar

import (
	"context"
	"time"

	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

// Event is the read model the calendar renders. It is never mutated once fetched.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"type"`
	Start       time.Time `json:"start_date"`
	End         time.Time `json:"end_date"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	MeetingLink string    `json:"meeting_link,omitempty"`
}

// EventFields are the validated values of a new event.
type EventFields struct {
	Name         string
	Description  string
	Category     string
	Kind         string
	Location     string
	MeetingLink  string
	Start        time.Time
	End          time.Time
	MaxAttendees *int
	Price        *float64
}

// EventSource is the data source the calendar reads from and writes to.
type EventSource interface {
	FetchEvents(ctx context.Context) ([]Event, error)
	SearchEvents(ctx context.Context, name string) ([]Event, error)
	UpdateEventDate(ctx context.Context, eventID string, newStartDate util.LocalDate) error
	CreateEvent(ctx context.Context, fields EventFields) (string, error)
}
