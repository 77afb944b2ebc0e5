package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/bakeplan/pkg/commands/options"
	"tableflip.dev/bakeplan/pkg/runner/calendar"
	"tableflip.dev/bakeplan/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	week := false
	showID := false

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "show the schedule as a month or week grid",
		Example: `
bakeplan calendar
bakeplan calendar --week
bakeplan calendar --on="2024-3-15"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := calendar.Calendar{
				On:          on,
				Week:        week,
				ShowID:      showID,
				Persistence: p,
			}
			return c.Do(context.Background())
		},
	}
	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&week, "week", false, "Show the week containing the anchor date instead of the month.")
	cmd.Flags().BoolVar(&showID, "show-ids", false, "Include event ids in the listing.")

	topLevel.AddCommand(cmd)
}
