// Package weekgrid renders the week view: seven columns of events with their
// time ranges and a movable event cursor.
package weekgrid

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/bakeplan/pkg/calendar"
	"tableflip.dev/bakeplan/pkg/event"
	"tableflip.dev/bakeplan/pkg/tui/events"
	"tableflip.dev/bakeplan/pkg/tui/theme"
)

// DefaultID identifies the week grid in cross-component events.
const DefaultID events.ComponentID = "week-grid"

const minColWidth = 14

// Model holds the seven projected days and the cursor position.
type Model struct {
	id       events.ComponentID
	days     []calendar.DayEvents
	dayIdx   int
	eventIdx int
	width    int
	th       theme.Theme
}

// NewModel constructs an empty week grid.
func NewModel(id events.ComponentID, th theme.Theme) *Model {
	if id == "" {
		id = DefaultID
	}
	return &Model{id: id, th: th}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetDays replaces the projected week, keeping the cursor in range.
func (m *Model) SetDays(days []calendar.DayEvents) {
	m.days = days
	if m.dayIdx >= len(days) {
		m.dayIdx = 0
	}
	m.eventIdx = 0
}

// SetWidth updates the rendered width.
func (m *Model) SetWidth(width int) { m.width = width }

// CursorDate returns the date of the focused column.
func (m *Model) CursorDate() time.Time {
	if m.dayIdx < 0 || m.dayIdx >= len(m.days) {
		return time.Time{}
	}
	return m.days[m.dayIdx].Day.Date
}

// FocusDate moves the cursor to the given date when visible.
func (m *Model) FocusDate(t time.Time) {
	for i, de := range m.days {
		if calendar.SameDay(de.Day.Date, t) {
			m.dayIdx = i
			m.eventIdx = 0
			return
		}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update moves the cursor and emits selection events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.moveDay(-1)
	case "right", "l":
		m.moveDay(1)
	case "up", "k":
		m.moveEvent(-1)
	case "down", "j":
		m.moveEvent(1)
	case "enter":
		if e := m.currentEvent(); e != nil {
			return m, events.EventSelectCmd(m.id, e)
		}
	}
	return m, nil
}

func (m *Model) moveDay(delta int) {
	next := m.dayIdx + delta
	if next < 0 || next >= len(m.days) {
		return
	}
	m.dayIdx = next
	m.eventIdx = 0
}

func (m *Model) moveEvent(delta int) {
	if m.dayIdx < 0 || m.dayIdx >= len(m.days) {
		return
	}
	n := len(m.days[m.dayIdx].Events)
	if n == 0 {
		return
	}
	next := m.eventIdx + delta
	if next < 0 || next >= n {
		return
	}
	m.eventIdx = next
}

func (m *Model) currentEvent() *event.Event {
	if m.dayIdx < 0 || m.dayIdx >= len(m.days) {
		return nil
	}
	evs := m.days[m.dayIdx].Events
	if len(evs) == 0 {
		return nil
	}
	if m.eventIdx >= len(evs) {
		m.eventIdx = 0
	}
	return evs[m.eventIdx]
}

// View renders seven day columns with their event stacks.
func (m *Model) View() string {
	if len(m.days) == 0 {
		return ""
	}

	colW := m.width / 7
	if colW < minColWidth {
		colW = minColWidth
	}

	cols := make([]string, 0, len(m.days))
	for i, de := range m.days {
		cols = append(cols, m.renderColumn(i, de, colW))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) renderColumn(idx int, de calendar.DayEvents, colW int) string {
	headStyle := m.th.DayNumber
	if de.Day.IsToday {
		headStyle = m.th.DayToday
	}
	head := de.Day.Date.Format("Mon 2")
	if idx == m.dayIdx {
		head = m.th.DayCursor.Render(head)
	} else {
		head = headStyle.Render(head)
	}

	rows := []string{head, ""}
	if len(de.Events) == 0 {
		rows = append(rows, m.th.Status.Render("·"))
	}
	for i, e := range de.Events {
		style := m.th.EventStyle(e.Color, false)
		if idx == m.dayIdx && i == m.eventIdx {
			style = m.th.EventSelected
		}
		rows = append(rows,
			style.Render(truncate(e.Title, colW-1)),
			m.th.Status.Render(truncate(e.TimeRange(), colW-1)),
			"",
		)
	}

	return lipgloss.NewStyle().Width(colW).Render(strings.Join(rows, "\n"))
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w-1]) + "…"
}
