package event

import (
	"encoding/json"
	"fmt"
	"time"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with RFC3339 JSON encoding and calendar-day
// comparison helpers.
type Timestamp struct {
	time.Time
}

// SameDay reports whether the timestamp falls on the same local calendar day
// as then, ignoring time-of-day.
func (t Timestamp) SameDay(then time.Time) bool {
	return t.Local().Day() == then.Day() &&
		t.Local().Month() == then.Month() &&
		t.Local().Year() == then.Year()
}

// SameMonth reports whether the timestamp falls in the same local month as then.
func (t Timestamp) SameMonth(then time.Time) bool {
	return t.Local().Month() == then.Month() &&
		t.Local().Year() == then.Year()
}

// Clock renders the local time-of-day, e.g. "8:00 AM".
func (t Timestamp) Clock() string {
	return t.Local().Format("3:04 PM")
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
