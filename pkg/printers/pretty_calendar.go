package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/bakeplan/pkg/calendar"
)

const gridWidth = len("Su Mo Tu We Th Fr Sa")

// Month prints the visible month grid. Days outside the anchor month are
// faint, today is reversed, and days carrying events are bold.
func (pp *PrettyPrint) Month(title string, days []calendar.DayEvents) {
	tf := color.New(color.FgWhite, color.Italic)
	mid := (gridWidth - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)

	hf := color.New(color.Faint)
	hf.Println("Su Mo Tu We Th Fr Sa")

	faint := color.New(color.Faint, color.FgWhite)
	plain := color.New(color.FgHiWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.ReverseVideo)

	for i, de := range days {
		c := plain
		switch {
		case de.Day.IsToday:
			c = today
		case len(de.Events) > 0:
			c = busy
		case !de.Day.IsCurrentMonth:
			c = faint
		}
		c.Printf("%2d", de.Day.Date.Day())
		if (i+1)%7 == 0 {
			fmt.Println("")
		} else {
			fmt.Print(" ")
		}
	}
	fmt.Println("")

	pp.agenda(days, true)
}

// Week prints the seven-day view with per-event time ranges.
func (pp *PrettyPrint) Week(title string, days []calendar.DayEvents) {
	pp.Title(title)
	fmt.Println("")
	pp.agenda(days, false)
}

// agenda lists each day's events under a day heading. In month form only
// in-month days with events are listed; week form lists all seven days.
func (pp *PrettyPrint) agenda(days []calendar.DayEvents, skipEmpty bool) {
	df := color.New(color.Bold)
	tf := color.New(color.Faint)
	idf := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, de := range days {
		if skipEmpty && (len(de.Events) == 0 || !de.Day.IsCurrentMonth) {
			continue
		}
		heading := de.Day.Date.Format("Mon Jan _2")
		if de.Day.IsToday {
			heading += "  (today)"
		}
		_, _ = df.Println(heading)

		if len(de.Events) == 0 {
			tf.Println("   none")
			continue
		}
		for _, e := range de.Events {
			if pp.ShowID {
				_, _ = idf.Print("  " + e.ID)
			}
			_, _ = colorFor(e.Color).Printf("  %s %s  %s\n", e.Status.Glyph(), e.TimeRange(), e.Title)
		}
	}
}
