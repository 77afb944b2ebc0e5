package calendar

import (
	"time"

	"tableflip.dev/bakeplan/pkg/event"
)

// DayEvents pairs a grid day with the events starting on it.
type DayEvents struct {
	Day    Day
	Events []*event.Event
}

// Project buckets events onto the visible days. An event lands in the bucket
// of its start day only; time-of-day is ignored for bucketing. Within a day,
// events keep their first-seen order from the source collection.
func Project(days []Day, events []*event.Event) []DayEvents {
	out := make([]DayEvents, 0, len(days))
	for _, d := range days {
		out = append(out, DayEvents{Day: d, Events: ForDay(events, d.Date)})
	}
	return out
}

// ForDay filters events starting on the given calendar day, preserving order.
func ForDay(events []*event.Event, day time.Time) []*event.Event {
	var matched []*event.Event
	for _, e := range events {
		if e == nil {
			continue
		}
		if e.Start.SameDay(day) {
			matched = append(matched, e)
		}
	}
	return matched
}
