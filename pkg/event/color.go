package event

import (
	"fmt"
	"strings"
)

// Color is the presentational tag attached to an event. The palette is fixed;
// mapping a tag to an actual style happens at the presentation boundary, not
// here.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
)

// AllColors returns the fixed palette.
func AllColors() []Color {
	return []Color{ColorBlue, ColorGreen, ColorRed, ColorPurple}
}

// ParseColor converts a string to a Color. Empty input defaults to blue.
func ParseColor(raw string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return ColorBlue, nil
	}
	for _, candidate := range AllColors() {
		if candidate == c {
			return candidate, nil
		}
	}
	return ColorBlue, fmt.Errorf("event: unknown color %q", raw)
}

func (c Color) String() string {
	return string(c)
}
