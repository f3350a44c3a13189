package calendar_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/chronos-events/internal/calendar"
	"github.com/stretchr/testify/assert"
)

func sampleEvents() []calendar.Event {
	return []calendar.Event{
		ev("1", "Summer Music Fest", "Festivals", at(2024, time.January, 10, 18, 0)),
		ev("2", "Techno Night", "Club Party", at(2024, time.January, 11, 23, 0)),
		ev("3", "Music Quiz", "Music", at(2024, time.January, 12, 20, 0)),
		ev("4", "Salsa", "Dance Night", at(2024, time.January, 12, 21, 0)),
		ev("5", "music for kids", "Music", at(2024, time.January, 13, 10, 0)),
	}
}

func TestApplyCategoryThenSearchEqualsConjunction(t *testing.T) {
	events := sampleEvents()

	for _, category := range []string{"", calendar.AllCategories, "Music", "Festivals", "Club Party", "Wedding"} {
		for _, search := range []string{"", "music", " MUSIC ", "night", "x", "s"} {
			f := calendar.Filter{Category: category, Search: search}

			var want []calendar.Event
			for _, e := range events {
				if f.Matches(e) {
					want = append(want, e)
				}
			}

			got := calendar.Apply(events, f)
			if len(want) == 0 {
				assert.Empty(t, got, "%q/%q", category, search)
				continue
			}
			assert.Equal(t, want, got, "%q/%q", category, search)
		}
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	events := sampleEvents()
	before := sampleEvents()

	got := calendar.Apply(events, calendar.Filter{Category: "Music"})
	got[0].Name = "changed"

	assert.Equal(t, before, events)
}

func TestFilterSentinels(t *testing.T) {
	e := ev("1", "Gala", "Wedding", at(2024, time.May, 1, 19, 0))

	assert.True(t, calendar.Filter{}.Matches(e))
	assert.True(t, calendar.Filter{Category: calendar.AllCategories}.Matches(e))
	assert.False(t, calendar.Filter{Category: "wedding"}.Matches(e), "category match is exact")
	assert.True(t, calendar.Filter{Search: "GA"}.Matches(e))

	withDescription := e
	withDescription.Description = "black tie"
	assert.False(t, calendar.Filter{Search: "black"}.Matches(withDescription), "only names are searched")
}
