// Package app composes the calendar TUI: a month or week grid fed from the
// view state, with a read-only detail overlay for the selected event.
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/bakeplan/pkg/tui/components/eventdetail"
	"tableflip.dev/bakeplan/pkg/tui/components/monthgrid"
	"tableflip.dev/bakeplan/pkg/tui/components/weekgrid"
	uievents "tableflip.dev/bakeplan/pkg/tui/events"
	"tableflip.dev/bakeplan/pkg/tui/theme"
	"tableflip.dev/bakeplan/pkg/view"
)

const footerHelp = "←↓↑→ move · tab cycle · enter open · p/n period · t today · m/w view · q quit"

// Model is the root Bubble Tea model. All calendar semantics live in the
// view state; this model only routes intents and renders.
type Model struct {
	state  *view.State
	th     theme.Theme
	month  *monthgrid.Model
	week   *weekgrid.Model
	detail *eventdetail.Model

	width  int
	height int
	status string
}

// New constructs the root model around an existing view state.
func New(state *view.State) *Model {
	th := theme.Default()
	m := &Model{
		state:  state,
		th:     th,
		month:  monthgrid.NewModel(monthgrid.DefaultID, th),
		week:   weekgrid.NewModel(weekgrid.DefaultID, th),
		detail: eventdetail.New(eventdetail.DefaultID, th, 52, 12),
		status: "Ready",
	}
	m.refresh()
	m.month.FocusDate(state.Anchor())
	m.week.FocusDate(state.Anchor())
	return m
}

// Run launches the Bubble Tea program that renders the calendar.
func Run(state *view.State) error {
	p := tea.NewProgram(New(state), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes Bubble Tea messages to the view state and components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.month.SetWidth(v.Width)
		m.week.SetWidth(v.Width)
		m.detail.SetSize(min(v.Width-4, 60), min(v.Height-4, 14))
		return m, nil

	case uievents.EventSelectMsg:
		m.state.Select(v.Event)
		m.detail.Show(v.Event)
		m.status = v.Event.Title
		return m, nil

	case uievents.DetailDismissMsg:
		m.state.ClearSelection()
		m.status = "Ready"
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(v)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.state.Selected() != nil {
		_, cmd := m.detail.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p", "[":
		m.state.Prev()
		m.refresh()
		m.focusAnchor()
	case "n", "]":
		m.state.Next()
		m.refresh()
		m.focusAnchor()
	case "t":
		m.state.Today()
		m.refresh()
		m.focusAnchor()
	case "m":
		carry := m.week.CursorDate()
		if carry.IsZero() {
			carry = m.state.Anchor()
		}
		m.state.SetMode(view.ModeMonth)
		m.refresh()
		m.month.FocusDate(carry)
	case "w":
		carry := m.month.CursorDate()
		if carry.IsZero() {
			carry = m.state.Anchor()
		}
		m.state.SetMode(view.ModeWeek)
		m.refresh()
		m.week.FocusDate(carry)
	default:
		_, cmd := m.activeGrid().Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh recomputes the projection and pushes it into the grids. The
// projection is pure, so re-deriving on every transition is safe.
func (m *Model) refresh() {
	projection := m.state.Projection()
	if m.state.Mode() == view.ModeWeek {
		m.week.SetDays(projection)
	} else {
		m.month.SetDays(projection)
	}
}

func (m *Model) focusAnchor() {
	if m.state.Mode() == view.ModeWeek {
		m.week.FocusDate(m.state.Anchor())
	} else {
		m.month.FocusDate(m.state.Anchor())
	}
}

func (m *Model) activeGrid() tea.Model {
	if m.state.Mode() == view.ModeWeek {
		return m.week
	}
	return m.month
}

// View renders header, grid (or detail overlay), and footer.
func (m *Model) View() string {
	var b strings.Builder

	title := m.th.Header.Render(m.state.Title())
	modeMonth := m.th.ModeIdle.Render("Month")
	modeWeek := m.th.ModeIdle.Render("Week")
	if m.state.Mode() == view.ModeWeek {
		modeWeek = m.th.ModeActive.Render("Week")
	} else {
		modeMonth = m.th.ModeActive.Render("Month")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", modeMonth, modeWeek))
	b.WriteString("\n\n")

	if m.state.Selected() != nil {
		body := m.detail.View()
		if m.width > 0 && m.height > 4 {
			body = lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, body)
		}
		b.WriteString(body)
	} else if m.state.Mode() == view.ModeWeek {
		b.WriteString(m.week.View())
	} else {
		b.WriteString(m.month.View())
	}

	b.WriteString("\n")
	b.WriteString(m.th.Help.Render(footerHelp))
	b.WriteString("\n")
	b.WriteString(m.th.Status.Render(m.status))
	return b.String()
}
