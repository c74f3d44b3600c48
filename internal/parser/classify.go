package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
)

const (
	// minTotalEffort is the floor for the volume estimate. Partial or
	// unparseable rep schemes still report a usable baseline.
	minTotalEffort = 50

	// strengthEffortProxy stands in for total effort on build-to / rep-max
	// sessions, where rep counts don't describe the real volume.
	strengthEffortProxy = 150
)

var (
	workoutNameRe = regexp.MustCompile(`(?i)workout\s*[:\-]\s*(.+)`)
	wodNameRe     = regexp.MustCompile(`(?i)wod\s*[:\-]\s*(.+)`)
	plainLineRe   = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*$`)

	timeCapRe  = regexp.MustCompile(`(?i)(?:cap|time cap)[:\s]*(\d+)(?:\s*min(?:utes?)?)?`)
	repCountRe = regexp.MustCompile(`(?i)\b(\d+)\s*(?:reps?\b|x)`)
	roundsRe   = regexp.MustCompile(`(?i)\b(\d+)\s*rounds?\b`)
)

// Classify turns one workout entity into a complete ParsedWorkout. Missing
// information is filled with defaults; nothing is left unset except the time
// cap and benchmark linkage.
func Classify(e Entity, vocab []models.BarbellLift) models.ParsedWorkout {
	name := e.DetectedName
	if name == "" || name == "Custom Workout" {
		if n := extractName(e.RawText); n != "" {
			name = n
		} else {
			name = "Custom Workout"
		}
	}

	workoutType := DetectWorkoutType(e.RawText)

	return models.ParsedWorkout{
		Name:           name,
		Description:    cleanDescription(e.RawText),
		WorkoutType:    workoutType,
		Scoring:        scoringFor(workoutType),
		TimeCapSeconds: ExtractTimeCap(e.RawText),
		TotalEffort:    EstimateTotalEffort(e.RawText),
		BarbellLifts:   IdentifyBarbellLifts(e.RawText, vocab),
		Benchmark: models.BenchmarkMatch{
			SourceCatalogue: models.CatalogueCustom,
			Category:        models.CatalogueCustom,
		},
	}
}

// extractName pulls a workout name out of free text: "Workout: X" / "WOD - X"
// patterns first, then any standalone letters-and-spaces line.
func extractName(raw string) string {
	for _, re := range []*regexp.Regexp{workoutNameRe, wodNameRe} {
		if m := re.FindStringSubmatch(raw); m != nil {
			if n := strings.TrimSpace(m[1]); len(n) > 2 {
				return n
			}
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		t := strings.TrimSpace(line)
		if plainLineRe.MatchString(t) && len(t) > 2 {
			return t
		}
	}
	return ""
}

// cleanDescription drops the entity's first line when it is a section
// boundary (the name already captured it) and joins the remaining non-empty
// lines.
func cleanDescription(raw string) string {
	lines := strings.Split(raw, "\n")
	if len(lines) > 0 {
		if _, _, ok := detectBoundaryLine(strings.TrimSpace(lines[0])); ok {
			lines = lines[1:]
		}
	}
	var kept []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// DetectWorkoutType picks a workout-type tag by substring keyword, checked
// in fixed priority order. Defaults to for_time.
func DetectWorkoutType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "for time") || strings.Contains(lower, "rft"):
		return models.TypeForTime
	case strings.Contains(lower, "amrap"):
		return models.TypeAMRAP
	case strings.Contains(lower, "emom"):
		return models.TypeEMOM
	case strings.Contains(lower, "tabata"):
		return models.TypeTabata
	case strings.Contains(lower, "build to") || strings.Contains(lower, "rm"):
		return models.TypeStrength
	case strings.Contains(lower, "max effort"):
		return models.TypeStrength
	default:
		return models.TypeForTime
	}
}

func scoringFor(workoutType string) string {
	switch workoutType {
	case models.TypeForTime:
		return "Time"
	case models.TypeAMRAP:
		return "Rounds + Reps"
	default:
		return "Points"
	}
}

// ExtractTimeCap finds "cap"/"time cap" markers and returns the cap in
// seconds, or nil if the text mentions none. Captured integers are minutes.
func ExtractTimeCap(text string) *int {
	m := timeCapRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	seconds := minutes * 60
	return &seconds
}

// EstimateTotalEffort produces a crude volume signal: the sum of rep counts,
// multiplied by the first "N rounds" token if present. Build-to / rep-max
// sessions report a fixed proxy instead. Never below minTotalEffort.
func EstimateTotalEffort(text string) int {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "build to") || strings.Contains(lower, "rm") {
		return strengthEffortProxy
	}

	total := 0
	for _, m := range repCountRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n
		}
	}
	if m := roundsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total *= n
		}
	}
	if total < minTotalEffort {
		total = minTotalEffort
	}
	return total
}

// IdentifyBarbellLifts scans the entity text for known lift names by
// case-insensitive containment, preserving vocabulary order. A lift whose
// name is a substring of another matched lift's name also matches on its
// own; call sites rely on seeing both.
func IdentifyBarbellLifts(text string, vocab []models.BarbellLift) []models.BarbellLift {
	lower := strings.ToLower(text)
	var found []models.BarbellLift
	for _, lift := range vocab {
		if lift.LiftName == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(lift.LiftName)) {
			found = append(found, lift)
		}
	}
	return found
}
