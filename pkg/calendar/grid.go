// Package calendar computes the visible date grid and projects events onto it.
// All functions are pure: the same inputs always yield the same grid.
package calendar

import "time"

// Day is one cell of the visible grid.
type Day struct {
	// Date is midnight (local) of the calendar day.
	Date time.Time
	// IsCurrentMonth marks days belonging to the anchor's month. Leading and
	// trailing days from adjacent months render dimmed.
	IsCurrentMonth bool
	// IsToday matches the real-world date, not the anchor. A grid anchored to
	// another month may legitimately contain no today.
	IsToday bool
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfWeek returns the Sunday on or before t. Week start is fixed to
// Sunday.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MonthGrid returns every day from the Sunday on or before the first of the
// anchor's month through the Saturday on or after its last day, ascending.
// The result length is always a multiple of 7, between 28 and 42 days.
func MonthGrid(anchor, now time.Time) []Day {
	first := StartOfMonth(anchor)
	last := EndOfMonth(anchor)
	start := StartOfWeek(first)
	end := StartOfWeek(last).AddDate(0, 0, 6)

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:           d,
			IsCurrentMonth: d.Month() == anchor.Month() && d.Year() == anchor.Year(),
			IsToday:        SameDay(d, now),
		})
	}
	return days
}

// WeekGrid returns the seven days of the Sunday-to-Saturday week containing
// the anchor, ascending.
func WeekGrid(anchor, now time.Time) []Day {
	start := StartOfWeek(anchor)

	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, Day{
			Date:           d,
			IsCurrentMonth: d.Month() == anchor.Month() && d.Year() == anchor.Year(),
			IsToday:        SameDay(d, now),
		})
	}
	return days
}
