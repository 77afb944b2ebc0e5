package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/bakeplan/pkg/commands/options"
	"tableflip.dev/bakeplan/pkg/event"
	"tableflip.dev/bakeplan/pkg/runner/events"
	"tableflip.dev/bakeplan/pkg/store"
)

func addEvents(topLevel *cobra.Command) {
	po := &options.OutputOptions{}
	showID := false
	var status event.Status

	cmd := &cobra.Command{
		Use:   "events [status]",
		Short: "list scheduled events, optionally filtered by status",
		Example: `
bakeplan events
bakeplan events planned
bakeplan events completed --json
`,
		ValidArgs: []string{"planned", "in-progress", "completed"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("too many statuses set, confused")
			}
			var err error
			status, err = event.ParseStatus(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return po.HandleError(err)
			}
			n := events.Events{
				Status:      status,
				JSON:        po.JSON,
				ShowID:      showID,
				Persistence: p,
			}
			return po.HandleError(n.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, po)
	cmd.Flags().BoolVar(&showID, "show-ids", false, "Include event ids in the listing.")

	topLevel.AddCommand(cmd)
}
