package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/bakeplan/pkg/event"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

func init() {
	// Terminals with no color support get plain output.
	if termenv.EnvColorProfile() == termenv.Ascii {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Events prints a flat table of events.
func (pp *PrettyPrint) Events(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "", "Date", "Time", "Title", "Recipe")
	}
	for _, e := range events {
		date := e.Start.Local().Format("Mon Jan _2")
		if pp.ShowID {
			tbl.AddRow(e.ID, e.Status.Glyph(), date, e.TimeRange(), e.Title, e.Recipe)
		} else {
			tbl.AddRow(e.Status.Glyph(), date, e.TimeRange(), e.Title, e.Recipe)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Detail prints a single event in long form.
func (pp *PrettyPrint) Detail(e *event.Event) {
	pp.Title(e.Title)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Status:", fmt.Sprintf("%s %s", e.Status.Glyph(), e.Status))
	tbl.AddRow("Date:", e.Start.Local().Format("January 2, 2006"))
	tbl.AddRow("Time:", e.TimeRange())
	if e.Recipe != "" {
		tbl.AddRow("Recipe:", e.Recipe)
	}
	if e.Description != "" {
		tbl.AddRow("Notes:", e.Description)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func colorFor(c event.Color) *color.Color {
	switch c {
	case event.ColorGreen:
		return color.New(color.FgGreen)
	case event.ColorRed:
		return color.New(color.FgRed)
	case event.ColorPurple:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgBlue)
	}
}
