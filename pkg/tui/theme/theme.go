// Package theme centralizes Lip Gloss styles for the Bubble Tea UI. The
// event color tags map to concrete styles here, at the presentation
// boundary, so the event model stays free of styling concerns.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/bakeplan/pkg/event"
)

// Theme groups the styles used across the calendar UI.
type Theme struct {
	Header     lipgloss.Style
	ModeActive lipgloss.Style
	ModeIdle   lipgloss.Style

	DayNumber lipgloss.Style
	DayDimmed lipgloss.Style
	DayToday  lipgloss.Style
	DayCursor lipgloss.Style

	Event         map[event.Color]lipgloss.Style
	EventDimmed   map[event.Color]lipgloss.Style
	EventSelected lipgloss.Style

	DetailFrame lipgloss.Style
	DetailLabel lipgloss.Style
	Badge       lipgloss.Style

	Help   lipgloss.Style
	Status lipgloss.Style
}

var palette = map[event.Color]string{
	event.ColorBlue:   "#3b82f6",
	event.ColorGreen:  "#22c55e",
	event.ColorRed:    "#ef4444",
	event.ColorPurple: "#a855f7",
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	eventStyles := make(map[event.Color]lipgloss.Style, len(palette))
	dimmedStyles := make(map[event.Color]lipgloss.Style, len(palette))
	for tag, hex := range palette {
		eventStyles[tag] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		dimmedStyles[tag] = lipgloss.NewStyle().Foreground(lipgloss.Color(dim(hex)))
	}

	return Theme{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		ModeActive: lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
		ModeIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),

		DayNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DayDimmed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		DayToday:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		DayCursor: lipgloss.NewStyle().Bold(true).Reverse(true),

		Event:         eventStyles,
		EventDimmed:   dimmedStyles,
		EventSelected: lipgloss.NewStyle().Bold(true).Reverse(true),

		DetailFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		DetailLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")),
		Badge:       lipgloss.NewStyle().Reverse(true).Padding(0, 1),

		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// EventStyle resolves the style for a color tag, dimmed for days outside the
// anchor month.
func (t Theme) EventStyle(tag event.Color, dimmed bool) lipgloss.Style {
	styles := t.Event
	if dimmed {
		styles = t.EventDimmed
	}
	if s, ok := styles[tag]; ok {
		return s
	}
	return styles[event.ColorBlue]
}

// dim blends the tag color toward black for out-of-month rendering.
func dim(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendLab(colorful.Color{}, 0.5).Hex()
}
