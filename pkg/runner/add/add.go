package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/bakeplan/pkg/event"
	"tableflip.dev/bakeplan/pkg/printers"
	"tableflip.dev/bakeplan/pkg/store"
)

const clockLayout = "15:04"

type Add struct {
	Title       string
	On          *time.Time
	StartClock  string
	EndClock    string
	Description string
	Recipe      string
	Status      string
	Color       string
	Demo        bool
	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	if a.Demo {
		if err := store.SeedDemo(a.Persistence, time.Now()); err != nil {
			return err
		}
		fmt.Println("seeded demo schedule")
		return nil
	}

	day := time.Now()
	if a.On != nil {
		day = *a.On
	}

	start, err := onClock(day, a.StartClock)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end := start.Add(time.Hour)
	if a.EndClock != "" {
		if end, err = onClock(day, a.EndClock); err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
	}

	e := event.New(a.Title, start, end)
	e.Description = a.Description
	e.Recipe = a.Recipe
	if e.Status, err = event.ParseStatus(a.Status); err != nil {
		return err
	}
	if e.Color, err = event.ParseColor(a.Color); err != nil {
		return err
	}

	if err := a.Persistence.Store(e); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Detail(e)
	return nil
}

// onClock combines a calendar day with an "HH:MM" time-of-day.
func onClock(day time.Time, clock string) (time.Time, error) {
	if clock == "" {
		clock = "09:00"
	}
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
