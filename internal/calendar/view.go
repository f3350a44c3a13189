package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

type View string

const (
	ViewDaily   View = "Daily"
	ViewWeekly  View = "Weekly"
	ViewMonthly View = "Monthly"
)

// AllCategories is the category filter value that disables category filtering.
const AllCategories = "All"

var (
	ErrInvalidView      = errors.New("invalid calendar view")
	ErrInvalidDirection = errors.New("invalid navigation direction")
	ErrInvalidState     = errors.New("invalid calendar state")
)

func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return ViewDaily, nil
	case "weekly":
		return ViewWeekly, nil
	case "monthly", "":
		return ViewMonthly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidView, s)
}

type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next", "forward":
		return Next, nil
	case "previous", "prev", "back":
		return Previous, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// ViewState drives grid generation. It is a value: every transition returns a
// new state and leaves the receiver untouched.
//
// Day is kept as-is across monthly navigation, so it may exceed the length of
// the current month; Reference normalises it.
type ViewState struct {
	View     View       `json:"view"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Day      int        `json:"day"`
	Category string     `json:"category"`
	Search   string     `json:"search"`
}

func NewViewState(today time.Time) ViewState {
	y, m, d := today.Date()
	return ViewState{
		View:     ViewMonthly,
		Year:     y,
		Month:    m,
		Day:      d,
		Category: AllCategories,
	}
}

// Normalize canonicalises the view name and the category sentinel and checks
// that the reference date is in range.
func (s ViewState) Normalize() (ViewState, error) {
	view, err := ParseView(string(s.View))
	if err != nil {
		return s, err
	}
	s.View = view
	if strings.TrimSpace(s.Category) == "" {
		s.Category = AllCategories
	}
	if s.Year < 1 || s.Year > 9999 {
		return s, fmt.Errorf("%w: year %d out of range", ErrInvalidState, s.Year)
	}
	if s.Month < time.January || s.Month > time.December {
		return s, fmt.Errorf("%w: month %d out of range", ErrInvalidState, s.Month)
	}
	if s.Day < 1 || s.Day > 31 {
		return s, fmt.Errorf("%w: day %d out of range", ErrInvalidState, s.Day)
	}
	return s, nil
}

// Reference is midnight of the reference day in loc.
func (s ViewState) Reference(loc *time.Location) time.Time {
	return time.Date(s.Year, s.Month, s.Day, 0, 0, 0, 0, loc)
}

func (s ViewState) Filter() Filter {
	return Filter{Category: s.Category, Search: s.Search}
}

func (s ViewState) WithDate(d util.LocalDate) ViewState {
	s.Year, s.Month, s.Day = d.Year, d.Month, d.Day
	return s
}

// Navigate moves one unit of the current view: a month, a week or a day.
func (s ViewState) Navigate(dir Direction) ViewState {
	switch s.View {
	case ViewDaily:
		return s.shiftDays(int(dir))
	case ViewWeekly:
		return s.shiftDays(7 * int(dir))
	default:
		first := time.Date(s.Year, s.Month+time.Month(dir), 1, 0, 0, 0, 0, time.UTC)
		s.Year, s.Month = first.Year(), first.Month()
		return s
	}
}

func (s ViewState) shiftDays(n int) ViewState {
	return s.WithDate(util.DateOf(time.Date(s.Year, s.Month, s.Day+n, 0, 0, 0, 0, time.UTC)))
}
