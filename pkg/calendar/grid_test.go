package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthGridSpansWholeWeeks(t *testing.T) {
	anchor := date(2024, time.March, 15) // a Friday
	now := date(2024, time.March, 15)

	days := MonthGrid(anchor, now)

	// March 2024 runs Friday the 1st through Sunday the 31st, so the grid
	// needs a trailing week for the 31st: Feb 25 through Apr 6.
	if len(days) != 42 {
		t.Fatalf("expected 42 days for March 2024, got %d", len(days))
	}
	if got := days[0].Date; !SameDay(got, date(2024, time.February, 25)) {
		t.Errorf("grid should start 2024-02-25, got %s", got.Format("2006-01-02"))
	}
	if got := days[len(days)-1].Date; !SameDay(got, date(2024, time.April, 6)) {
		t.Errorf("grid should end 2024-04-06, got %s", got.Format("2006-01-02"))
	}
	if days[0].Date.Weekday() != time.Sunday {
		t.Errorf("grid should start on Sunday, got %s", days[0].Date.Weekday())
	}
	last := days[len(days)-1]
	if last.Date.Weekday() != time.Saturday {
		t.Errorf("grid should end on Saturday, got %s", last.Date.Weekday())
	}
	contained := false
	for _, d := range days {
		if SameDay(d.Date, date(2024, time.March, 31)) {
			contained = d.IsCurrentMonth
		}
	}
	if !contained {
		t.Error("grid must fully contain the month; 2024-03-31 missing")
	}
}

func TestMonthGridLengthAlwaysDivisibleBySeven(t *testing.T) {
	now := date(2024, time.June, 1)
	for months := -24; months <= 24; months++ {
		anchor := date(2024, time.January, 17).AddDate(0, months, 0)
		days := MonthGrid(anchor, now)
		if len(days)%7 != 0 {
			t.Fatalf("anchor %s: length %d not divisible by 7",
				anchor.Format("2006-01"), len(days))
		}
		// The whole anchor month must be contained.
		contained := 0
		for _, d := range days {
			if d.IsCurrentMonth {
				contained++
			}
		}
		if want := EndOfMonth(anchor).Day(); contained != want {
			t.Fatalf("anchor %s: %d in-month days, want %d",
				anchor.Format("2006-01"), contained, want)
		}
	}
}

func TestMonthGridAdjacentMonthDaysAreDimmed(t *testing.T) {
	days := MonthGrid(date(2024, time.March, 15), date(2024, time.March, 15))

	if days[0].IsCurrentMonth {
		t.Error("2024-02-25 should not be marked current month")
	}
	for _, d := range days {
		if d.Date.Month() == time.March && !d.IsCurrentMonth {
			t.Errorf("%s wrongly marked out of month", d.Date.Format("2006-01-02"))
		}
	}
}

func TestWeekGridContainsAnchor(t *testing.T) {
	anchor := date(2024, time.March, 15)
	days := WeekGrid(anchor, anchor)

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if !SameDay(days[0].Date, date(2024, time.March, 10)) {
		t.Errorf("week should start 2024-03-10, got %s", days[0].Date.Format("2006-01-02"))
	}
	if !SameDay(days[6].Date, date(2024, time.March, 16)) {
		t.Errorf("week should end 2024-03-16, got %s", days[6].Date.Format("2006-01-02"))
	}
	found := false
	for _, d := range days {
		if SameDay(d.Date, anchor) {
			found = true
		}
	}
	if !found {
		t.Error("week grid does not contain the anchor date")
	}
}

func TestWeekGridAnchoredOnSundayAndSaturday(t *testing.T) {
	sunday := date(2024, time.March, 10)
	saturday := date(2024, time.March, 16)

	for _, anchor := range []time.Time{sunday, saturday} {
		days := WeekGrid(anchor, anchor)
		if !SameDay(days[0].Date, sunday) || !SameDay(days[6].Date, saturday) {
			t.Errorf("anchor %s: got week %s..%s", anchor.Weekday(),
				days[0].Date.Format("2006-01-02"), days[6].Date.Format("2006-01-02"))
		}
	}
}

func TestTodayMarkerFollowsClockNotAnchor(t *testing.T) {
	anchor := date(2024, time.March, 15)
	now := date(2024, time.March, 12)

	count := 0
	for _, d := range MonthGrid(anchor, now) {
		if d.IsToday {
			count++
			if !SameDay(d.Date, now) {
				t.Errorf("wrong day marked today: %s", d.Date.Format("2006-01-02"))
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one today, got %d", count)
	}
}

func TestNoTodayWhenViewingAnotherMonth(t *testing.T) {
	// Viewing a future month with the clock elsewhere: no cell is today,
	// and that is correct behavior.
	days := MonthGrid(date(2024, time.July, 1), date(2024, time.March, 12))
	for _, d := range days {
		if d.IsToday {
			t.Fatalf("%s should not be today", d.Date.Format("2006-01-02"))
		}
	}
}

func TestStartOfWeekIsIdempotent(t *testing.T) {
	for i := 0; i < 7; i++ {
		d := date(2024, time.March, 10).AddDate(0, 0, i)
		start := StartOfWeek(d)
		if start.Weekday() != time.Sunday {
			t.Errorf("%s: start of week is %s", d.Weekday(), start.Weekday())
		}
		if !StartOfWeek(start).Equal(start) {
			t.Errorf("start of week not idempotent for %s", d.Format("2006-01-02"))
		}
	}
}
