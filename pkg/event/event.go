// Package event defines the calendar event model for the baking schedule.
package event

import (
	"errors"
	"fmt"
	"time"
)

// Event is a single scheduled bakery activity.
type Event struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Start       Timestamp `json:"start"`
	End         Timestamp `json:"end"`
	Description string    `json:"description,omitempty"`
	Recipe      string    `json:"recipe,omitempty"`
	Status      Status    `json:"status,omitempty"`
	Color       Color     `json:"color,omitempty"`
}

// New constructs an event with defaulted status and color.
func New(title string, start, end time.Time) *Event {
	return &Event{
		Title:  title,
		Start:  Timestamp{start},
		End:    Timestamp{end},
		Status: StatusPlanned,
		Color:  ColorBlue,
	}
}

// Validate checks the ingestion contract. Events failing validation must be
// rejected by the collaborator feeding the calendar, never rendered.
func (e *Event) Validate() error {
	if e == nil {
		return errors.New("event: nil event")
	}
	if e.Title == "" {
		return errors.New("event: missing title")
	}
	if e.Start.IsZero() {
		return fmt.Errorf("event %q: missing start", e.Title)
	}
	if e.End.IsZero() {
		return fmt.Errorf("event %q: missing end", e.Title)
	}
	if e.End.Before(e.Start.Time) {
		return fmt.Errorf("event %q: end %s before start %s", e.Title, e.End, e.Start)
	}
	if _, err := ParseStatus(string(e.Status)); err != nil {
		return fmt.Errorf("event %q: %w", e.Title, err)
	}
	if _, err := ParseColor(string(e.Color)); err != nil {
		return fmt.Errorf("event %q: %w", e.Title, err)
	}
	return nil
}

// Normalize fills zero-value status and color so stored payloads are explicit.
func (e *Event) Normalize() {
	if e.Status == "" {
		e.Status = StatusPlanned
	}
	if e.Color == "" {
		e.Color = ColorBlue
	}
}

// TimeRange renders the start and end time-of-day, e.g. "8:00 AM - 9:00 AM".
func (e *Event) TimeRange() string {
	return fmt.Sprintf("%s - %s", e.Start.Clock(), e.End.Clock())
}

func (e *Event) String() string {
	return fmt.Sprintf("%s %s  %s", e.Status.Glyph(), e.Start.Clock(), e.Title)
}
