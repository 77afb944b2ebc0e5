package store

import (
	"time"

	"tableflip.dev/bakeplan/pkg/event"
)

// SeedDemo writes a small demonstration schedule around the given date so a
// fresh install has something to look at.
func SeedDemo(p Persistence, now time.Time) error {
	at := func(t time.Time, hour int) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
	}

	demo := []*event.Event{
		{
			Title:       "Prepare Sourdough Starter",
			Start:       event.Timestamp{Time: at(now, 8)},
			End:         event.Timestamp{Time: at(now, 9)},
			Description: "Feed the mother starter and prepare levain for tomorrow's bake.",
			Recipe:      "Classic Sourdough",
			Status:      event.StatusPlanned,
			Color:       event.ColorBlue,
		},
		{
			Title:       "Bake Croissants",
			Start:       event.Timestamp{Time: at(now, 6)},
			End:         event.Timestamp{Time: at(now, 11)},
			Description: "Lamination, proofing, and baking of 50 butter croissants.",
			Recipe:      "Butter Croissant",
			Status:      event.StatusInProgress,
			Color:       event.ColorGreen,
		},
		{
			Title:       "Client Cake Tasting",
			Start:       event.Timestamp{Time: at(now.AddDate(0, 0, 7), 14)},
			End:         event.Timestamp{Time: at(now.AddDate(0, 0, 7), 15)},
			Description: "Tasting session for the wedding cake order #1024.",
			Status:      event.StatusPlanned,
			Color:       event.ColorPurple,
		},
		{
			Title:       "Deep Clean Ovens",
			Start:       event.Timestamp{Time: at(now.AddDate(0, 0, -7), 16)},
			End:         event.Timestamp{Time: at(now.AddDate(0, 0, -7), 18)},
			Description: "Scheduled bi-weekly deep cleaning of all baking ovens.",
			Status:      event.StatusCompleted,
			Color:       event.ColorRed,
		},
	}

	for _, e := range demo {
		if err := p.Store(e); err != nil {
			return err
		}
	}
	return nil
}
