package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-steps/internal/road"
)

func TestFormatTrack(t *testing.T) {
	track, err := road.Parse("#_##_#")
	if err != nil {
		t.Fatal(err)
	}

	out := formatTrack(track, 2, 4)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"     0  #_##",
		"          ^",
		"     4  _#",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want[i])
		}
	}
}

func TestFormatTrackPastEnd(t *testing.T) {
	track, _ := road.Parse("##")
	out := formatTrack(track, 3, 10)
	if !strings.Contains(out, "past the end") {
		t.Errorf("expected overshoot marker:\n%s", out)
	}
}
