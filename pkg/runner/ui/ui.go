package ui

import (
	"context"
	"errors"
	"os"
	"time"

	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/bakeplan/pkg/store"
	"tableflip.dev/bakeplan/pkg/tui/app"
	"tableflip.dev/bakeplan/pkg/view"
)

type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("ui requires an interactive terminal")
	}

	state := view.NewState(u.Persistence.List(ctx), time.Now)
	return app.Run(state)
}
