package calendar

import "time"

// EventsOn returns the events starting on the calendar day of date, compared
// in date's location. Input order is preserved and the result is never nil.
func EventsOn(events []Event, date time.Time) []Event {
	y, m, d := date.Date()
	loc := date.Location()

	out := make([]Event, 0)
	for _, e := range events {
		ey, em, ed := e.Start.In(loc).Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
