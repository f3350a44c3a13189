package calendar

import "strings"

// Filter selects the events shown on the calendar.
type Filter struct {
	Category string
	Search   string
}

func (f Filter) term() string {
	return strings.ToLower(strings.TrimSpace(f.Search))
}

func (f Filter) MatchesCategory(e Event) bool {
	return f.Category == "" || f.Category == AllCategories || e.Category == f.Category
}

// MatchesSearch reports whether the search term is a case-insensitive
// substring of the event name. Descriptions are not searched.
func (f Filter) MatchesSearch(e Event) bool {
	term := f.term()
	return term == "" || strings.Contains(strings.ToLower(e.Name), term)
}

func (f Filter) Matches(e Event) bool {
	return f.MatchesCategory(e) && f.MatchesSearch(e)
}

// Apply filters by category first and by search term second. The result is a
// new slice; events keeps its contents and order.
func Apply(events []Event, f Filter) []Event {
	byCategory := make([]Event, 0, len(events))
	for _, e := range events {
		if f.MatchesCategory(e) {
			byCategory = append(byCategory, e)
		}
	}

	term := f.term()
	if term == "" {
		return byCategory
	}

	out := make([]Event, 0, len(byCategory))
	for _, e := range byCategory {
		if f.MatchesSearch(e) {
			out = append(out, e)
		}
	}
	return out
}
