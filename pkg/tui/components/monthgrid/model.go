// Package monthgrid renders the month view as a 7-column day grid with a
// movable day cursor.
package monthgrid

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/bakeplan/pkg/calendar"
	"tableflip.dev/bakeplan/pkg/event"
	"tableflip.dev/bakeplan/pkg/tui/events"
	"tableflip.dev/bakeplan/pkg/tui/theme"
)

// DefaultID identifies the month grid in cross-component events.
const DefaultID events.ComponentID = "month-grid"

const (
	minCellWidth = 9
	cellHeight   = 4
	maxTitles    = 2
)

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Model holds the projected days and the cursor position.
type Model struct {
	id       events.ComponentID
	days     []calendar.DayEvents
	cursor   int
	eventIdx int
	width    int
	th       theme.Theme
}

// NewModel constructs an empty month grid.
func NewModel(id events.ComponentID, th theme.Theme) *Model {
	if id == "" {
		id = DefaultID
	}
	return &Model{id: id, th: th}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetDays replaces the projected days, keeping the cursor in range.
func (m *Model) SetDays(days []calendar.DayEvents) {
	m.days = days
	if m.cursor >= len(days) {
		m.cursor = len(days) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.eventIdx = 0
}

// SetWidth updates the rendered width.
func (m *Model) SetWidth(width int) { m.width = width }

// CursorDate returns the date under the cursor, or zero when empty.
func (m *Model) CursorDate() time.Time {
	if m.cursor < 0 || m.cursor >= len(m.days) {
		return time.Time{}
	}
	return m.days[m.cursor].Day.Date
}

// FocusDate moves the cursor to the given date when visible.
func (m *Model) FocusDate(t time.Time) {
	for i, de := range m.days {
		if calendar.SameDay(de.Day.Date, t) {
			m.cursor = i
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
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "up", "k":
		m.move(-7)
	case "down", "j":
		m.move(7)
	case "tab":
		m.cycleEvent()
	case "enter":
		if e := m.currentEvent(); e != nil {
			return m, events.EventSelectCmd(m.id, e)
		}
	}
	return m, nil
}

func (m *Model) move(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.days) {
		return
	}
	m.cursor = next
	m.eventIdx = 0
}

func (m *Model) cycleEvent() {
	if m.cursor < 0 || m.cursor >= len(m.days) {
		return
	}
	n := len(m.days[m.cursor].Events)
	if n == 0 {
		return
	}
	m.eventIdx = (m.eventIdx + 1) % n
}

func (m *Model) currentEvent() *event.Event {
	if m.cursor < 0 || m.cursor >= len(m.days) {
		return nil
	}
	evs := m.days[m.cursor].Events
	if len(evs) == 0 {
		return nil
	}
	if m.eventIdx >= len(evs) {
		m.eventIdx = 0
	}
	return evs[m.eventIdx]
}

// View renders the weekday header and the day cells.
func (m *Model) View() string {
	if len(m.days) == 0 {
		return ""
	}

	cellW := m.width / 7
	if cellW < minCellWidth {
		cellW = minCellWidth
	}

	header := make([]string, 0, 7)
	for _, wd := range weekdayHeader {
		header = append(header, m.th.Status.Width(cellW).Render(wd))
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for row := 0; row*7 < len(m.days); row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			if idx >= len(m.days) {
				break
			}
			cells = append(cells, m.renderCell(idx, cellW))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCell(idx, cellW int) string {
	de := m.days[idx]

	numStyle := m.th.DayNumber
	if !de.Day.IsCurrentMonth {
		numStyle = m.th.DayDimmed
	}
	if de.Day.IsToday {
		numStyle = m.th.DayToday
	}
	num := numStyle.Render(fmt.Sprintf("%2d", de.Day.Date.Day()))
	if idx == m.cursor {
		num = m.th.DayCursor.Render(fmt.Sprintf("%2d", de.Day.Date.Day()))
	}

	rows := []string{num}
	for i, e := range de.Events {
		if i >= maxTitles {
			rows = append(rows, m.th.Status.Render(fmt.Sprintf("+%d more", len(de.Events)-maxTitles)))
			break
		}
		style := m.th.EventStyle(e.Color, !de.Day.IsCurrentMonth)
		if idx == m.cursor && i == m.eventIdx {
			style = m.th.EventSelected
		}
		rows = append(rows, style.Render(truncate(e.Title, cellW-1)))
	}
	for len(rows) < cellHeight {
		rows = append(rows, "")
	}

	return lipgloss.NewStyle().Width(cellW).Render(strings.Join(rows, "\n"))
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
