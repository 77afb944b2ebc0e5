// Package eventdetail renders the read-only detail overlay for a selected
// event.
package eventdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/bakeplan/pkg/event"
	"tableflip.dev/bakeplan/pkg/tui/events"
	"tableflip.dev/bakeplan/pkg/tui/theme"
)

// DefaultID identifies the detail overlay in cross-component events.
const DefaultID events.ComponentID = "event-detail"

// Model shows one event inside a bordered, scrollable frame.
type Model struct {
	id       events.ComponentID
	viewport viewport.Model
	ev       *event.Event
	width    int
	height   int
	th       theme.Theme
}

// New constructs a detail overlay sized to the provided bounds.
func New(id events.ComponentID, th theme.Theme, width, height int) *Model {
	if id == "" {
		id = DefaultID
	}
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	m := &Model{id: id, viewport: vp, th: th}
	m.SetSize(width, height)
	return m
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Show loads an event into the overlay.
func (m *Model) Show(e *event.Event) {
	m.ev = e
	m.reflow()
}

// Event returns the currently shown event, or nil.
func (m *Model) Event() *event.Event { return m.ev }

// SetSize configures the overlay dimensions.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 28, 6
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(width - 4)
	m.viewport.SetHeight(height - 2)
	m.reflow()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update closes the overlay on esc/q and forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc", "q", "enter":
			return m, events.DetailDismissCmd(m.id)
		}
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the framed detail content.
func (m *Model) View() string {
	if m.ev == nil {
		return ""
	}
	return m.th.DetailFrame.Width(m.width - 2).Render(m.viewport.View())
}

func (m *Model) reflow() {
	if m.ev == nil {
		return
	}
	wrap := m.width - 4
	if wrap <= 0 {
		wrap = 40
	}

	var b strings.Builder
	b.WriteString(m.th.Header.Render(m.ev.Title))
	b.WriteString("  ")
	b.WriteString(m.th.Badge.Render(m.ev.Status.String()))
	b.WriteString("\n\n")
	b.WriteString(m.th.DetailLabel.Render("When: "))
	b.WriteString(fmt.Sprintf("%s, %s",
		m.ev.Start.Local().Format("January 2, 2006"), m.ev.TimeRange()))
	b.WriteString("\n")
	if m.ev.Recipe != "" {
		b.WriteString(m.th.DetailLabel.Render("Recipe: "))
		b.WriteString(m.ev.Recipe)
		b.WriteString("\n")
	}
	if m.ev.Description != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(m.ev.Description, wrap))
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.SetYOffset(0)
}
