package calendar

import (
	"strconv"
	"time"

	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

// Cell is one day slot of the grid. Padding cells have an empty Label and Date.
type Cell struct {
	Label   string  `json:"label"`
	Date    string  `json:"date,omitempty"`
	Events  []Event `json:"events"`
	IsToday bool    `json:"is_today"`
}

func (c Cell) IsPadding() bool {
	return c.Date == ""
}

type Grid struct {
	View  View   `json:"view"`
	Title string `json:"title"`
	Cells []Cell `json:"cells"`
}

// Build filters events with the state's filter and lays them out for the
// state's view. today decides the "is today" flag and the timezone of the grid.
func Build(events []Event, state ViewState, today time.Time) Grid {
	filtered := Apply(events, state.Filter())
	loc := today.Location()

	switch state.View {
	case ViewDaily:
		return buildDaily(filtered, state, today, loc)
	case ViewWeekly:
		return buildWeekly(filtered, state, today, loc)
	default:
		return buildMonthly(filtered, state, today, loc)
	}
}

func buildMonthly(events []Event, state ViewState, today time.Time, loc *time.Location) Grid {
	first := time.Date(state.Year, state.Month, 1, 0, 0, 0, 0, loc)
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, loc)
	padding := int(first.Weekday())

	cells := make([]Cell, 0, padding+last.Day())
	for i := 0; i < padding; i++ {
		cells = append(cells, Cell{Events: []Event{}})
	}
	for day := 1; day <= last.Day(); day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc)
		cells = append(cells, newCell(events, date, today))
	}

	return Grid{
		View:  ViewMonthly,
		Title: first.Format("January 2006"),
		Cells: cells,
	}
}

func buildWeekly(events []Event, state ViewState, today time.Time, loc *time.Location) Grid {
	ref := state.Reference(loc)
	sunday := time.Date(ref.Year(), ref.Month(), ref.Day()-int(ref.Weekday()), 0, 0, 0, 0, loc)

	cells := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		date := time.Date(sunday.Year(), sunday.Month(), sunday.Day()+i, 0, 0, 0, 0, loc)
		cells = append(cells, newCell(events, date, today))
	}

	return Grid{
		View:  ViewWeekly,
		Title: "Week of " + sunday.Format("January 2, 2006"),
		Cells: cells,
	}
}

func buildDaily(events []Event, state ViewState, today time.Time, loc *time.Location) Grid {
	date := state.Reference(loc)
	return Grid{
		View:  ViewDaily,
		Title: date.Format("Monday, January 2, 2006"),
		Cells: []Cell{newCell(events, date, today)},
	}
}

func newCell(events []Event, date, today time.Time) Cell {
	return Cell{
		Label:   strconv.Itoa(date.Day()),
		Date:    util.DateOf(date).String(),
		Events:  EventsOn(events, date),
		IsToday: sameDay(date, today),
	}
}
