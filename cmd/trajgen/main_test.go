package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-motion/motion/trajectory"
)

func TestParseEvents(t *testing.T) {
	events, err := parseEvents([]string{"60:-0.5", "0:2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0] != (event{0, 2}) || events[1] != (event{60, -0.5}) {
		t.Fatalf("events = %v", events)
	}

	for _, bad := range []string{"5", "x:1", "-1:1", "3:abc"} {
		if _, err := parseEvents([]string{bad}); err == nil {
			t.Errorf("parseEvents(%q) accepted", bad)
		}
	}

	events, err = parseEvents(nil)
	if err != nil || len(events) != 1 || events[0].target != 1 {
		t.Fatalf("default events = %v, %v", events, err)
	}
}

func TestWriteTableStopsWhenSettled(t *testing.T) {
	gen, err := trajectory.NewTrapezoid(1, 2, 10)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeTable(&buf, gen, []event{{0, 1}}, 1000, 1); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Header plus ticks 0..14.
	if len(lines) != 16 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[len(lines)-1], "1.000000") {
		t.Fatalf("last row does not reach the target: %q", lines[len(lines)-1])
	}
}
