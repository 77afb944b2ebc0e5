package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/bakeplan/pkg/ics"
	"tableflip.dev/bakeplan/pkg/printers"
	"tableflip.dev/bakeplan/pkg/store"
)

type Import struct {
	Path        string
	DryRun      bool
	Persistence store.Persistence
}

func (i *Import) Do(ctx context.Context) error {
	if i.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	f, err := os.Open(i.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	events, skipped, err := ics.Parse(f)
	if err != nil {
		return err
	}
	for _, serr := range skipped {
		fmt.Fprintf(os.Stderr, "skipped: %s\n", serr)
	}

	if i.DryRun {
		pp := printers.PrettyPrint{}
		fmt.Println("")
		pp.Title(fmt.Sprintf("Would import %d events from %s", len(events), i.Path))
		pp.Events(events...)
		return nil
	}

	stored := 0
	for _, e := range events {
		if err := i.Persistence.Store(e); err != nil {
			fmt.Fprintf(os.Stderr, "skipped: %s\n", err)
			continue
		}
		stored++
	}

	fmt.Printf("imported %d of %d events from %s\n", stored, len(events), i.Path)
	return nil
}
