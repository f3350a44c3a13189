package calendar

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	defaultStartTime = "00:00"
	defaultEndTime   = "23:59"
)

var ErrValidation = errors.New("validation failed")

// ValidationError is a problem with user input found before contacting the data source.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string       { return e.Msg }
func (e *ValidationError) Unwrap() error       { return ErrValidation }
func (e *ValidationError) UserMessage() string { return e.Msg }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// EventDraft holds the raw values of the event creation form.
type EventDraft struct {
	Name         string `json:"event_name"`
	Description  string `json:"event_description"`
	Category     string `json:"event_type"`
	Kind         string `json:"calendar_event_type"`
	StartDate    string `json:"start_date"`
	StartTime    string `json:"start_time"`
	EndDate      string `json:"end_date"`
	EndTime      string `json:"end_time"`
	Location     string `json:"location"`
	MeetingLink  string `json:"meeting_link"`
	MaxAttendees string `json:"max_attendees"`
	Price        string `json:"price"`
}

// Validate checks the draft and converts it into EventFields with times in loc.
func (d EventDraft) Validate(loc *time.Location) (EventFields, error) {
	if strings.TrimSpace(d.Name) == "" {
		return EventFields{}, invalid("event_name", "Event name is required")
	}
	if c := strings.TrimSpace(d.Category); c == "" || strings.EqualFold(c, AllCategories) {
		return EventFields{}, invalid("event_type", "Event type is required")
	}
	if strings.TrimSpace(d.StartDate) == "" {
		return EventFields{}, invalid("start_date", "Start date is required")
	}
	if strings.TrimSpace(d.EndDate) == "" {
		return EventFields{}, invalid("end_date", "End date is required")
	}
	if strings.TrimSpace(d.Location) == "" {
		return EventFields{}, invalid("location", "Location is required")
	}

	start, err := combine(d.StartDate, d.StartTime, defaultStartTime, loc)
	if err != nil {
		return EventFields{}, invalid("start_date", "Invalid start or end date/time")
	}
	end, err := combine(d.EndDate, d.EndTime, defaultEndTime, loc)
	if err != nil {
		return EventFields{}, invalid("end_date", "Invalid start or end date/time")
	}
	if end.Before(start) {
		return EventFields{}, invalid("end_date", "End date must not be before start date")
	}

	fields := EventFields{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Category:    strings.TrimSpace(d.Category),
		Kind:        strings.TrimSpace(d.Kind),
		Location:    strings.TrimSpace(d.Location),
		MeetingLink: strings.TrimSpace(d.MeetingLink),
		Start:       start,
		End:         end,
	}

	if raw := strings.TrimSpace(d.MaxAttendees); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return EventFields{}, invalid("max_attendees", "Max attendees must be a whole number")
		}
		fields.MaxAttendees = &n
	}
	if raw := strings.TrimSpace(d.Price); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil || p < 0 {
			return EventFields{}, invalid("price", "Price must be a number")
		}
		fields.Price = &p
	}

	return fields, nil
}

func combine(date, clock, fallback string, loc *time.Location) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = fallback
	}
	// HTML time inputs may include seconds.
	if len(clock) == len("15:04:05") {
		clock = clock[:5]
	}
	return time.ParseInLocation("2006-01-02T15:04", strings.TrimSpace(date)+"T"+clock, loc)
}
