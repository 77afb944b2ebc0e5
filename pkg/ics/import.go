// Package ics converts iCalendar payloads into schedule events. Recurrence
// rules are not expanded; only concrete VEVENT instances are imported.
package ics

import (
	"errors"
	"fmt"
	"io"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/bakeplan/pkg/event"
)

// Parse reads an ICS payload and returns the valid events plus one error per
// rejected VEVENT. Malformed records fail here, at ingestion, so they never
// reach the calendar.
func Parse(r io.Reader) ([]*event.Event, []error, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, nil, fmt.Errorf("ics: parse calendar: %w", err)
	}

	var (
		events  []*event.Event
		skipped []error
	)
	for _, ve := range cal.Events() {
		e, perr := parseVEvent(ve)
		if perr != nil {
			skipped = append(skipped, perr)
			continue
		}
		events = append(events, e)
	}
	return events, skipped, nil
}

func parseVEvent(ve *ical.VEvent) (*event.Event, error) {
	e := &event.Event{}

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		e.ID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Title = p.Value
	}
	if e.Title == "" {
		return nil, errors.New("ics: vevent missing SUMMARY")
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		e.Description = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("ics: %q: invalid DTSTART: %w", e.Title, err)
	}
	// DTEND is optional in the wild; a missing end means zero-length. A
	// present but unparsable DTEND rejects the record.
	end := start
	if p := ve.GetProperty(ical.ComponentPropertyDtEnd); p != nil {
		if end, err = ve.GetEndAt(); err != nil {
			return nil, fmt.Errorf("ics: %q: invalid DTEND: %w", e.Title, err)
		}
	}
	e.Start = event.Timestamp{Time: start}
	e.End = event.Timestamp{Time: end}

	if p := ve.GetProperty(ical.ComponentProperty("STATUS")); p != nil {
		e.Status = statusFromICS(p.Value)
	}
	if p := ve.GetProperty(ical.ComponentProperty("COLOR")); p != nil {
		if c, cerr := event.ParseColor(p.Value); cerr == nil {
			e.Color = c
		}
	}
	e.Normalize()

	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("ics: %w", err)
	}
	return e, nil
}

func statusFromICS(raw string) event.Status {
	switch raw {
	case "COMPLETED":
		return event.StatusCompleted
	case "IN-PROCESS":
		return event.StatusInProgress
	default:
		return event.StatusPlanned
	}
}
