package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/bakeplan/pkg/printers"
	"tableflip.dev/bakeplan/pkg/store"
	"tableflip.dev/bakeplan/pkg/view"
)

type Calendar struct {
	On          *time.Time
	Week        bool
	ShowID      bool
	Persistence store.Persistence
}

func (c *Calendar) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}

	s := view.NewState(c.Persistence.List(ctx), time.Now)
	if c.Week {
		s.SetMode(view.ModeWeek)
	}
	if c.On != nil {
		s.SetAnchor(*c.On)
	}

	pp := printers.PrettyPrint{ShowID: c.ShowID}
	fmt.Println("")
	if s.Mode() == view.ModeWeek {
		pp.Week(s.Title(), s.Projection())
	} else {
		pp.Month(s.Title(), s.Projection())
	}
	return nil
}
