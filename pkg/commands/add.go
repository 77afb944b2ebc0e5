package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/bakeplan/pkg/commands/options"
	"tableflip.dev/bakeplan/pkg/runner/add"
	"tableflip.dev/bakeplan/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	a := &add.Add{}
	demo := false

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "add an event to the schedule",
		Example: `
bakeplan add "Bake Croissants" --start=06:00 --end=11:00 --recipe="Butter Croissant" --color=green
bakeplan add "Client Cake Tasting" --on="2024-3-22" --start=14:00 --color=purple
bakeplan add --demo
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if demo {
				return nil
			}
			if len(args) < 1 {
				return errors.New("add requires an event title")
			}
			a.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a.On = on
			a.Demo = demo
			a.Persistence = p
			return a.Do(context.Background())
		},
	}
	options.AddOnArgs(cmd, oo)
	cmd.Flags().StringVar(&a.StartClock, "start", "09:00", "Start time of day, 24h HH:MM.")
	cmd.Flags().StringVar(&a.EndClock, "end", "", "End time of day, 24h HH:MM. Defaults to one hour after start.")
	cmd.Flags().StringVar(&a.Description, "description", "", "Free-form notes for the event.")
	cmd.Flags().StringVar(&a.Recipe, "recipe", "", "Associated recipe label.")
	cmd.Flags().StringVar(&a.Status, "status", "planned", "One of planned, in-progress, completed.")
	cmd.Flags().StringVar(&a.Color, "color", "blue", "One of blue, green, red, purple.")
	cmd.Flags().BoolVar(&demo, "demo", false, "Seed a demonstration schedule instead of adding one event.")

	topLevel.AddCommand(cmd)
}
