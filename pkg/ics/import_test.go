package ics

import (
	"strings"
	"testing"

	"tableflip.dev/bakeplan/pkg/event"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//bakeplan//test//EN
BEGIN:VEVENT
UID:bake-croissants@test
SUMMARY:Bake Croissants
DESCRIPTION:Lamination and proofing
DTSTART:20240315T060000Z
DTEND:20240315T110000Z
STATUS:IN-PROCESS
COLOR:green
END:VEVENT
BEGIN:VEVENT
UID:no-summary@test
DTSTART:20240316T080000Z
DTEND:20240316T090000Z
END:VEVENT
END:VCALENDAR
`

func TestParseImportsValidEvents(t *testing.T) {
	events, skipped, err := Parse(strings.NewReader(sampleICS))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 valid event, got %d", len(events))
	}
	if len(skipped) != 1 {
		t.Fatalf("expected 1 skipped event, got %d", len(skipped))
	}

	e := events[0]
	if e.ID != "bake-croissants@test" {
		t.Errorf("id = %q", e.ID)
	}
	if e.Title != "Bake Croissants" {
		t.Errorf("title = %q", e.Title)
	}
	if e.Status != event.StatusInProgress {
		t.Errorf("status = %q", e.Status)
	}
	if e.Color != event.ColorGreen {
		t.Errorf("color = %q", e.Color)
	}
	if e.End.Before(e.Start.Time) {
		t.Error("end before start after import")
	}
}

func TestParseMissingSummaryIsSkippedNotFatal(t *testing.T) {
	_, skipped, err := Parse(strings.NewReader(sampleICS))
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 1 || !strings.Contains(skipped[0].Error(), "SUMMARY") {
		t.Errorf("skipped = %v", skipped)
	}
}

func TestParseGarbageFailsFast(t *testing.T) {
	if _, _, err := Parse(strings.NewReader("not an ics payload")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseMissingEndMakesZeroLengthEvent(t *testing.T) {
	payload := strings.Replace(sampleICS, "DTEND:20240315T110000Z\n", "", 1)
	events, _, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].End.Equal(events[0].Start.Time) {
		t.Errorf("missing DTEND should import zero-length, got end %s", events[0].End)
	}
}

func TestParseMalformedEndIsRejected(t *testing.T) {
	payload := strings.Replace(sampleICS, "DTEND:20240315T110000Z", "DTEND:late morning", 1)
	events, skipped, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range events {
		if e.Title == "Bake Croissants" {
			t.Fatal("event with unparsable DTEND should be skipped")
		}
	}
	found := false
	for _, serr := range skipped {
		if strings.Contains(serr.Error(), "DTEND") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a DTEND error among skipped: %v", skipped)
	}
}

func TestParseUnknownColorFallsBack(t *testing.T) {
	payload := strings.Replace(sampleICS, "COLOR:green", "COLOR:teal", 1)
	events, _, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Color != event.ColorBlue {
		t.Errorf("expected fallback to blue, got %v", events)
	}
}
