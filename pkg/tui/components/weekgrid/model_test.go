package weekgrid

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/bakeplan/pkg/calendar"
	"tableflip.dev/bakeplan/pkg/event"
	"tableflip.dev/bakeplan/pkg/tui/events"
	"tableflip.dev/bakeplan/pkg/tui/theme"
)

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func weekProjection() []calendar.DayEvents {
	anchor := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	first := time.Date(2024, time.March, 15, 6, 0, 0, 0, time.Local)
	second := time.Date(2024, time.March, 15, 16, 0, 0, 0, time.Local)
	evs := []*event.Event{
		event.New("Bake Croissants", first, first.Add(5*time.Hour)),
		event.New("Deep Clean Ovens", second, second.Add(2*time.Hour)),
	}
	return calendar.Project(calendar.WeekGrid(anchor, anchor), evs)
}

func newModel() *Model {
	m := NewModel(DefaultID, theme.Default())
	m.SetWidth(112)
	m.SetDays(weekProjection())
	return m
}

func TestViewShowsTimeRanges(t *testing.T) {
	view := stripANSIString(newModel().View())

	if !strings.Contains(view, "Bake Croissants") {
		t.Error("view missing event title")
	}
	if !strings.Contains(view, "6:00 AM") {
		t.Error("view missing start time-of-day")
	}
}

func TestEventCursorMovesWithinDay(t *testing.T) {
	m := newModel()
	m.FocusDate(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	if msg := cmd().(events.EventSelectMsg); msg.Event.Title != "Bake Croissants" {
		t.Errorf("selected %q first", msg.Event.Title)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if msg := cmd().(events.EventSelectMsg); msg.Event.Title != "Deep Clean Ovens" {
		t.Errorf("selected %q after moving down", msg.Event.Title)
	}
}

func TestDayCursorMovesAcrossColumns(t *testing.T) {
	m := newModel()
	m.FocusDate(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local))

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	// Clamped at Saturday.
	if got := m.CursorDate(); !calendar.SameDay(got, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.Local)) {
		t.Errorf("cursor = %s, want 2024-03-16", got.Format("2006-01-02"))
	}
}
