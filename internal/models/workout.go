package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout type tags produced by the classifier.
const (
	TypeForTime   = "for_time"
	TypeAMRAP     = "amrap"
	TypeEMOM      = "emom"
	TypeTabata    = "tabata"
	TypeStrength  = "strength"
	TypeInterval  = "interval"
	TypeEndurance = "endurance"
	TypeChipper   = "chipper"
	TypeLadder    = "ladder"
	TypeUnbroken  = "unbroken"
)

// Benchmark catalogue identifiers.
const (
	CatalogueGirl    = "girl"
	CatalogueHero    = "hero"
	CatalogueNotable = "notable"
	CatalogueCustom  = "custom"
)

// BenchmarkEntry is a named benchmark workout from one of the reference
// catalogues (Girl WODs, Hero WODs, Notables).
type BenchmarkEntry struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	WorkoutType    string `json:"workout_type"`
	Scoring        string `json:"scoring"`
	TimeCapSeconds *int   `json:"time_cap_seconds,omitempty"`
	TotalEffort    *int   `json:"total_effort,omitempty"`
}

// BarbellLift is one entry of the weightlifting reference vocabulary.
type BarbellLift struct {
	ID       int    `json:"id"`
	LiftName string `json:"lift_name"`
	Category string `json:"category"`
	LiftType string `json:"lift_type"`
}

// BenchmarkMatch links a parsed workout to a catalogue entry, or marks it
// custom when nothing matched.
type BenchmarkMatch struct {
	SourceCatalogue string        `json:"source_catalogue"`
	DatabaseID      *int          `json:"database_id,omitempty"`
	Category        string        `json:"category"`
	Lifts           []BarbellLift `json:"lifts,omitempty"`
}

// ParsedWorkout is the classifier output for one workout entity.
type ParsedWorkout struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	WorkoutType    string         `json:"workout_type"`
	Scoring        string         `json:"scoring"`
	TimeCapSeconds *int           `json:"time_cap_seconds,omitempty"`
	TotalEffort    int            `json:"total_effort"`
	BarbellLifts   []BarbellLift  `json:"barbell_lifts,omitempty"`
	Benchmark      BenchmarkMatch `json:"benchmark"`
}

// ParseResult is the top-level output of a parse call.
type ParseResult struct {
	Found         bool            `json:"found"`
	Confidence    float64         `json:"confidence"`
	Category      string          `json:"category"`
	Workouts      []ParsedWorkout `json:"workouts"`
	ExtractedDate string          `json:"extracted_date,omitempty"`
	Suggestions   []string        `json:"suggestions,omitempty"`
	Errors        []string        `json:"errors,omitempty"`
}

// CustomWorkoutRow is a row ready for insertion into the custom_workouts table.
type CustomWorkoutRow struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	WorkoutType     string     `json:"workout_type"`
	Scoring         string     `json:"scoring"`
	TimeCapSeconds  *int       `json:"time_cap_seconds,omitempty"`
	TotalEffort     int        `json:"total_effort"`
	SourceCatalogue string     `json:"source_catalogue"`
	BenchmarkID     *int       `json:"benchmark_id,omitempty"`
	WorkoutDate     *time.Time `json:"workout_date,omitempty"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
}
