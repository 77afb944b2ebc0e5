package event

import (
	"fmt"
	"strings"
)

// Status tracks where an event sits in the production flow.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// AllStatuses returns the supported statuses in workflow order.
func AllStatuses() []Status {
	return []Status{StatusPlanned, StatusInProgress, StatusCompleted}
}

// ParseStatus converts a string to a Status. Empty input defaults to planned.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StatusPlanned, nil
	}
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return StatusPlanned, fmt.Errorf("event: unknown status %q", raw)
}

// Glyph returns the single-rune marker used by printers and the TUI.
func (s Status) Glyph() string {
	switch s {
	case StatusInProgress:
		return "◐"
	case StatusCompleted:
		return "●"
	default:
		return "○"
	}
}

func (s Status) String() string {
	return string(s)
}
