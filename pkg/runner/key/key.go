package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/bakeplan/pkg/event"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	b := color.New(color.Bold)
	u := color.New(color.Bold, color.Underline)

	_, _ = fmt.Fprintln(color.Output, u.Sprint("\nStatus"))
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Symbol"), b.Sprint("Meaning"))
	for _, s := range event.AllStatuses() {
		tbl.AddRow(s.Glyph(), s.String())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	_, _ = fmt.Fprintln(color.Output, u.Sprint("\nColors"))
	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Tag"), b.Sprint("Use"))
	tbl.AddRow(event.ColorBlue.String(), "doughs and starters")
	tbl.AddRow(event.ColorGreen.String(), "bakes and production")
	tbl.AddRow(event.ColorRed.String(), "maintenance")
	tbl.AddRow(event.ColorPurple.String(), "client appointments")
	_, _ = fmt.Fprintln(color.Output, tbl)

	return nil
}
