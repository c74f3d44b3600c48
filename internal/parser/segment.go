package parser

import (
	"regexp"
	"strings"
)

// SectionKind tags how a workout entity was carved out of the input.
type SectionKind string

const (
	KindSectionHeader SectionKind = "section_header"
	KindNamedWorkout  SectionKind = "named_workout"
	KindCapsHeader    SectionKind = "caps_header"
	KindPreContent    SectionKind = "pre_content"
	KindFullContent   SectionKind = "full_content"
)

// Entity is one self-contained workout description extracted from a pasted
// block that may describe several workouts or sections.
type Entity struct {
	RawText      string
	DetectedName string
	Kind         SectionKind
}

var (
	// sectionKeywords is the closed set of exact header lines gyms use to
	// separate programming blocks.
	sectionKeywords = map[string]bool{
		"STRENGTH":     true,
		"WORKOUT":      true,
		"SKILL":        true,
		"GYMNASTICS":   true,
		"MINI-PUMP":    true,
		"ACCESSORY":    true,
		"METCON":       true,
		"WOD":          true,
		"CONDITIONING": true,
	}

	// namedWorkoutRe matches "Workout: Fran" / "WOD: Murph" style lines.
	namedWorkoutRe = regexp.MustCompile(`(?i)^(?:workout|wod)\s*:\s*(.+)$`)

	// capsHeaderRe matches generic ALL-CAPS headers (letters, spaces, & and -).
	capsHeaderRe = regexp.MustCompile(`^[A-Z][A-Z &\-]*$`)

	metricWords = []string{"reps", "rounds", "minutes", "seconds"}
)

type boundary struct {
	lineIndex int
	name      string
	kind      SectionKind
}

// detectBoundaryLine classifies a trimmed line as a section boundary.
// Priority: exact keyword > "Workout: Name" > generic caps header.
func detectBoundaryLine(t string) (name string, kind SectionKind, ok bool) {
	if t == "" {
		return "", "", false
	}
	if sectionKeywords[strings.ToUpper(t)] {
		return t, KindSectionHeader, true
	}
	if m := namedWorkoutRe.FindStringSubmatch(t); m != nil {
		return strings.TrimSpace(m[1]), KindNamedWorkout, true
	}
	if isCapsHeader(t) {
		return t, KindCapsHeader, true
	}
	return "", "", false
}

// isCapsHeader reports whether a line looks like an ALL-CAPS section title
// rather than a metrics line ("21 REPS", "5 ROUNDS").
func isCapsHeader(t string) bool {
	if len(t) <= 3 || len(t) >= 50 {
		return false
	}
	if !capsHeaderRe.MatchString(t) {
		return false
	}
	lower := strings.ToLower(t)
	for _, w := range metricWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	return true
}

// Segment splits normalized text into one or more workout entities.
// Always returns at least one entity for non-empty input: if no boundary
// lines are detected, the whole post-skip text becomes a single entity.
func Segment(text string) []Entity {
	lines := strings.Split(text, "\n")

	// Skip leading blank, date, and day-name lines.
	start := 0
	for start < len(lines) {
		t := strings.TrimSpace(lines[start])
		if t == "" || isDateLine(t) || isDayLine(t) {
			start++
			continue
		}
		break
	}
	body := lines[start:]

	var bounds []boundary
	for i, line := range body {
		t := strings.TrimSpace(line)
		if t == "" || isDateLine(t) || isDayLine(t) {
			continue
		}
		if name, kind, ok := detectBoundaryLine(t); ok {
			bounds = append(bounds, boundary{lineIndex: i, name: name, kind: kind})
		}
	}

	if len(bounds) == 0 {
		raw := stripDateLines(body)
		if raw == "" {
			return nil
		}
		name := extractName(raw)
		if name == "" {
			name = "Custom Workout"
		}
		return []Entity{{RawText: raw, DetectedName: name, Kind: KindFullContent}}
	}

	var entities []Entity

	// Unattributed content before the first boundary.
	if pre := stripDateLines(body[:bounds[0].lineIndex]); pre != "" {
		name := extractName(pre)
		if name == "" {
			name = "Pre-Section Content"
		}
		entities = append(entities, Entity{RawText: pre, DetectedName: name, Kind: KindPreContent})
	}

	for i, b := range bounds {
		end := len(body)
		if i+1 < len(bounds) {
			end = bounds[i+1].lineIndex
		}
		raw := stripDateLines(body[b.lineIndex:end])
		if raw == "" {
			continue
		}
		entities = append(entities, Entity{RawText: raw, DetectedName: b.name, Kind: b.kind})
	}
	return entities
}

// stripDateLines removes date and day-name lines from a span and trims it.
func stripDateLines(lines []string) string {
	var kept []string
	for _, line := range lines {
		if isDateLine(line) || isDayLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
