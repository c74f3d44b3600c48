package parser

import (
	"strings"
	"testing"
)

// TestSegmentTwoSections verifies the canonical two-section whiteboard paste
// splits into exactly two entities carrying the header names.
func TestSegmentTwoSections(t *testing.T) {
	entities := Segment("STRENGTH\nBack Squat 5x5\n\nMETCON\nAMRAP 12:\n10 burpees")
	if len(entities) != 2 {
		t.Fatalf("entities = %d, want 2", len(entities))
	}
	if entities[0].DetectedName != "STRENGTH" {
		t.Errorf("entities[0].DetectedName = %q, want STRENGTH", entities[0].DetectedName)
	}
	if entities[0].Kind != KindSectionHeader {
		t.Errorf("entities[0].Kind = %q, want %q", entities[0].Kind, KindSectionHeader)
	}
	if entities[1].DetectedName != "METCON" {
		t.Errorf("entities[1].DetectedName = %q, want METCON", entities[1].DetectedName)
	}
	if entities[1].RawText != "METCON\nAMRAP 12:\n10 burpees" {
		t.Errorf("entities[1].RawText = %q", entities[1].RawText)
	}
}

// TestSegmentNamedWorkout verifies "Workout: Name" lines become boundaries
// with the captured remainder as the entity name.
func TestSegmentNamedWorkout(t *testing.T) {
	entities := Segment("Workout: Fran\n21-15-9\nThrusters\nPull-ups")
	if len(entities) != 1 {
		t.Fatalf("entities = %d, want 1", len(entities))
	}
	if entities[0].DetectedName != "Fran" {
		t.Errorf("DetectedName = %q, want Fran", entities[0].DetectedName)
	}
	if entities[0].Kind != KindNamedWorkout {
		t.Errorf("Kind = %q, want %q", entities[0].Kind, KindNamedWorkout)
	}
}

// TestSegmentNoBoundaries verifies boundary-free input falls back to a
// single full-content entity.
func TestSegmentNoBoundaries(t *testing.T) {
	entities := Segment("3 rounds for time:\n10 thrusters\n10 pull-ups")
	if len(entities) != 1 {
		t.Fatalf("entities = %d, want 1", len(entities))
	}
	if entities[0].Kind != KindFullContent {
		t.Errorf("Kind = %q, want %q", entities[0].Kind, KindFullContent)
	}
	if entities[0].DetectedName != "Custom Workout" {
		t.Errorf("DetectedName = %q, want Custom Workout", entities[0].DetectedName)
	}
}

// TestSegmentPreContent verifies unattributed content before the first
// boundary is emitted as its own entity.
func TestSegmentPreContent(t *testing.T) {
	entities := Segment("5 min bike warm up\nstretching\n\nMETCON\nAMRAP 10:\n5 pull-ups")
	if len(entities) != 2 {
		t.Fatalf("entities = %d, want 2", len(entities))
	}
	if entities[0].Kind != KindPreContent {
		t.Errorf("entities[0].Kind = %q, want %q", entities[0].Kind, KindPreContent)
	}
	if entities[1].DetectedName != "METCON" {
		t.Errorf("entities[1].DetectedName = %q, want METCON", entities[1].DetectedName)
	}
}

// TestSegmentSkipsDateAndDayLines verifies leading date/day lines never
// start entities and date lines inside a span are stripped.
func TestSegmentSkipsDateAndDayLines(t *testing.T) {
	entities := Segment("19-February-2026\nMonday\nSTRENGTH\nBack Squat 5x5")
	if len(entities) != 1 {
		t.Fatalf("entities = %d, want 1", len(entities))
	}
	if entities[0].RawText != "STRENGTH\nBack Squat 5x5" {
		t.Errorf("RawText = %q", entities[0].RawText)
	}
}

// TestCapsHeaderRejectsMetricLines verifies ALL-CAPS metric lines are not
// treated as section headers.
func TestCapsHeaderRejectsMetricLines(t *testing.T) {
	for _, line := range []string{"MAX REPS", "FIVE ROUNDS", "REST MINUTES", "WORK SECONDS"} {
		if isCapsHeader(line) {
			t.Errorf("isCapsHeader(%q) = true, want false", line)
		}
	}
	for _, line := range []string{"COOL DOWN", "CORE FINISHER", "OLY WORK"} {
		if !isCapsHeader(line) {
			t.Errorf("isCapsHeader(%q) = false, want true", line)
		}
	}
}

// TestCapsHeaderLengthBounds verifies the strict 3..50 length window.
func TestCapsHeaderLengthBounds(t *testing.T) {
	if isCapsHeader("ABC") {
		t.Error("isCapsHeader(ABC) = true, want false (length 3 not accepted)")
	}
	if !isCapsHeader("ABCD") {
		t.Error("isCapsHeader(ABCD) = false, want true")
	}
	if isCapsHeader(strings.Repeat("A", 50)) {
		t.Error("isCapsHeader(50 chars) = true, want false")
	}
}
