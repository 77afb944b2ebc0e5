// Package view holds the calendar view state and its transitions. It is a
// pure in-memory engine: rendering layers read grids and projections from it
// and feed user intents back in.
package view

import (
	"time"

	"tableflip.dev/bakeplan/pkg/calendar"
	"tableflip.dev/bakeplan/pkg/event"
)

// Mode selects the visible grid shape.
type Mode string

const (
	ModeMonth Mode = "month"
	ModeWeek  Mode = "week"
)

// Clock supplies the current real-world time. Injectable so today-marking is
// deterministic under test.
type Clock func() time.Time

// State is the calendar view state: anchor date, mode, event collection, and
// the optional selected event. It never mutates the event collection.
type State struct {
	anchor   time.Time
	mode     Mode
	events   []*event.Event
	selected *event.Event
	now      Clock
}

// NewState creates a month-mode state anchored to today.
func NewState(events []*event.Event, now Clock) *State {
	if now == nil {
		now = time.Now
	}
	return &State{
		anchor: calendar.StartOfDay(now()),
		mode:   ModeMonth,
		events: events,
		now:    now,
	}
}

// Anchor returns the reference date defining the visible month or week.
func (s *State) Anchor() time.Time { return s.anchor }

// Mode returns the current view mode.
func (s *State) Mode() Mode { return s.mode }

// Events returns the backing event collection.
func (s *State) Events() []*event.Event { return s.events }

// SetEvents replaces the backing event collection, e.g. after a reload from
// the store. Selection is preserved only if the selected event survives.
func (s *State) SetEvents(events []*event.Event) {
	s.events = events
	if s.selected == nil {
		return
	}
	for _, e := range events {
		if e == s.selected || (e != nil && e.ID != "" && e.ID == s.selected.ID) {
			s.selected = e
			return
		}
	}
	s.selected = nil
}

// SetMode switches between month and week without moving the anchor. The
// week grid re-derives from the existing anchor, so no snap is needed.
func (s *State) SetMode(m Mode) {
	if m == ModeMonth || m == ModeWeek {
		s.mode = m
	}
}

// Prev moves back one month or one week depending on mode. Month navigation
// snaps to the first of the month; week navigation keeps the weekday.
func (s *State) Prev() {
	s.shift(-1)
}

// Next moves forward one month or one week depending on mode.
func (s *State) Next() {
	s.shift(1)
}

func (s *State) shift(direction int) {
	switch s.mode {
	case ModeWeek:
		s.anchor = s.anchor.AddDate(0, 0, 7*direction)
	default:
		s.anchor = calendar.StartOfMonth(s.anchor).AddDate(0, direction, 0)
	}
}

// SetAnchor jumps the anchor to an arbitrary date, e.g. from a --on flag.
func (s *State) SetAnchor(t time.Time) {
	s.anchor = calendar.StartOfDay(t)
}

// Today re-anchors on the current real-world date regardless of mode.
func (s *State) Today() {
	s.anchor = calendar.StartOfDay(s.now())
}

// Grid returns the visible date sequence for the current anchor and mode.
func (s *State) Grid() []calendar.Day {
	if s.mode == ModeWeek {
		return calendar.WeekGrid(s.anchor, s.now())
	}
	return calendar.MonthGrid(s.anchor, s.now())
}

// Projection returns the visible days with their per-day event lists.
func (s *State) Projection() []calendar.DayEvents {
	return calendar.Project(s.Grid(), s.events)
}

// Title renders the header label for the visible range.
func (s *State) Title() string {
	if s.mode == ModeWeek {
		return s.anchor.Format("January 2, 2006")
	}
	return s.anchor.Format("January 2006")
}

// Select opens the detail view on an event. Callers pass events taken from a
// rendered projection, so referential validity is assumed.
func (s *State) Select(e *event.Event) {
	s.selected = e
}

// ClearSelection closes the detail view.
func (s *State) ClearSelection() {
	s.selected = nil
}

// Selected returns the event shown in the detail view, or nil.
func (s *State) Selected() *event.Event {
	return s.selected
}
