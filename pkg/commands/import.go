package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/bakeplan/pkg/runner/importer"
	"tableflip.dev/bakeplan/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	dryRun := false

	cmd := &cobra.Command{
		Use:   "import [file.ics]",
		Short: "import events from an iCalendar file",
		Example: `
bakeplan import schedule.ics
bakeplan import schedule.ics --dry-run
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("import requires exactly one ics file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := importer.Import{
				Path:        args[0],
				DryRun:      dryRun,
				Persistence: p,
			}
			return i.Do(context.Background())
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and list the events without storing them.")

	topLevel.AddCommand(cmd)
}
