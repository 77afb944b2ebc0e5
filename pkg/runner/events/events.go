package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/bakeplan/pkg/event"
	"tableflip.dev/bakeplan/pkg/printers"
	"tableflip.dev/bakeplan/pkg/store"
)

type Events struct {
	Status      event.Status
	JSON        bool
	ShowID      bool
	Persistence store.Persistence
}

func (n *Events) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list events, no persistence")
	}

	all := n.filtered(n.Persistence.List(ctx))

	if n.JSON {
		b, err := json.Marshal(all)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Schedule")
	pp.Events(all...)
	return nil
}

func (n *Events) filtered(all []*event.Event) []*event.Event {
	if n.Status == "" {
		return all
	}
	c := make([]*event.Event, 0, len(all))
	for _, e := range all {
		if e.Status == n.Status {
			c = append(c, e)
		}
	}
	return c
}
