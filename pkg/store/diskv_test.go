package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/bakeplan/pkg/event"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func testEvent(title string, day time.Time) *event.Event {
	start := time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, time.Local)
	return event.New(title, start, start.Add(time.Hour))
}

func TestStoreAndListRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	e := testEvent("Bake Croissants", day)
	e.Recipe = "Butter Croissant"
	if err := p.Store(e); err != nil {
		t.Fatal(err)
	}
	if e.ID == "" {
		t.Fatal("Store did not assign an id")
	}

	all := p.List(ctx)
	if len(all) != 1 {
		t.Fatalf("listed %d events, want 1", len(all))
	}
	got := all[0]
	if got.Title != e.Title || got.Recipe != e.Recipe || !got.Start.Equal(e.Start.Time) {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Status != event.StatusPlanned || got.Color != event.ColorBlue {
		t.Errorf("defaults not normalized: %+v", got)
	}
}

func TestStoreRejectsInvalidEvent(t *testing.T) {
	p := load(t)
	start := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)

	bad := event.New("Backwards", start, start.Add(-time.Hour))
	if err := p.Store(bad); err == nil {
		t.Fatal("expected validation error at ingestion")
	}
	if got := p.List(context.Background()); len(got) != 0 {
		t.Fatalf("invalid event reached the store: %d entries", len(got))
	}
}

func TestListSortsByStart(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	mar := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	feb := time.Date(2024, time.February, 2, 0, 0, 0, 0, time.Local)
	for _, e := range []*event.Event{testEvent("Later", mar), testEvent("Earlier", feb)} {
		if err := p.Store(e); err != nil {
			t.Fatal(err)
		}
	}

	all := p.List(ctx)
	if len(all) != 2 {
		t.Fatalf("listed %d events, want 2", len(all))
	}
	if all[0].Title != "Earlier" || all[1].Title != "Later" {
		t.Errorf("wrong order: %s, %s", all[0].Title, all[1].Title)
	}
}

func TestGetAndDeleteByID(t *testing.T) {
	p := load(t)
	ctx := context.Background()
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	e := testEvent("Deep Clean Ovens", day)
	if err := p.Store(e); err != nil {
		t.Fatal(err)
	}

	got, err := p.Get(ctx, e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != e.Title {
		t.Errorf("got %q", got.Title)
	}

	if err := p.Delete(e.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Get(ctx, e.ID); err == nil {
		t.Error("expected error after delete")
	}
	if err := p.Delete(e.ID); err == nil {
		t.Error("expected error deleting a missing id")
	}
}

func TestEnsureIDIsStable(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	a := testEvent("Bake Croissants", day)
	b := testEvent("Bake Croissants", day)

	EnsureID(a)
	EnsureID(b)
	if a.ID == "" || a.ID != b.ID {
		t.Errorf("ids %q and %q should match", a.ID, b.ID)
	}

	c := testEvent("Bake Croissants", day.AddDate(0, 0, 1))
	EnsureID(c)
	if c.ID == a.ID {
		t.Error("different start should produce a different id")
	}
}

func TestSeedDemoPopulatesSchedule(t *testing.T) {
	p := load(t)
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	if err := SeedDemo(p, now); err != nil {
		t.Fatal(err)
	}
	all := p.List(context.Background())
	if len(all) != 4 {
		t.Fatalf("seeded %d events, want 4", len(all))
	}
	for _, e := range all {
		if err := e.Validate(); err != nil {
			t.Errorf("seeded event invalid: %v", err)
		}
	}
}
