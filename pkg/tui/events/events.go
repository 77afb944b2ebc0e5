// Package events defines the messages exchanged between calendar UI
// components and the root model.
package events

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/bakeplan/pkg/event"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// EventSelectMsg is emitted when the user activates an event in a grid,
// opening the detail view.
type EventSelectMsg struct {
	Component ComponentID
	Event     *event.Event
}

// EventSelectCmd wraps EventSelectMsg into a tea.Cmd.
func EventSelectCmd(component ComponentID, e *event.Event) tea.Cmd {
	return func() tea.Msg {
		return EventSelectMsg{Component: component, Event: e}
	}
}

// DetailDismissMsg is emitted when the detail view is closed.
type DetailDismissMsg struct {
	Component ComponentID
}

// DetailDismissCmd wraps DetailDismissMsg into a tea.Cmd.
func DetailDismissCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return DetailDismissMsg{Component: component}
	}
}
