// Package parser turns free-text workout descriptions (pasted whiteboard
// programming, coach notes, whiteboard-app exports) into structured
// workouts. The pipeline is pure computation over strings: normalize,
// extract a date, segment into entities, classify each entity, and match
// entities against the benchmark catalogues. The caller supplies all
// reference data; the parser performs no I/O and keeps no state.
package parser

import (
	"fmt"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
)

// Confidence levels reported on successful parses.
const (
	matchedConfidence = 0.9
	customConfidence  = 0.7
)

// ReferenceData is the read-only dataset a parse runs against. Callers fetch
// it once (from storage or a cache) and pass it down; the parser never
// mutates it.
type ReferenceData struct {
	GirlBenchmarks    []models.BenchmarkEntry
	HeroBenchmarks    []models.BenchmarkEntry
	NotableBenchmarks []models.BenchmarkEntry
	BarbellLifts      []models.BarbellLift

	// LiftsForBenchmark resolves the lift set joined to a matched benchmark.
	// May be nil, in which case matches carry no lift detail.
	LiftsForBenchmark func(benchmarkID int, catalogue string) []models.BarbellLift
}

// BenchmarkNames returns all catalogue names in girl, hero, notable order.
func (r *ReferenceData) BenchmarkNames() []string {
	names := make([]string, 0, len(r.GirlBenchmarks)+len(r.HeroBenchmarks)+len(r.NotableBenchmarks))
	for _, b := range r.GirlBenchmarks {
		names = append(names, b.Name)
	}
	for _, b := range r.HeroBenchmarks {
		names = append(names, b.Name)
	}
	for _, b := range r.NotableBenchmarks {
		names = append(names, b.Name)
	}
	return names
}

// Parse runs the full pipeline over one pasted text block. It always
// produces a result: malformed input degrades to permissive defaults, and
// the only hard failures are empty input and the zero-entity guard.
// Parsing is deterministic and idempotent.
func Parse(rawText string, ref *ReferenceData) (result *models.ParseResult) {
	if ref == nil {
		ref = &ReferenceData{}
	}

	// Reference-data faults (or any other unexpected panic) must not escape
	// to the caller; they surface as a failed result instead.
	defer func() {
		if r := recover(); r != nil {
			result = &models.ParseResult{
				Found:    false,
				Category: "unknown",
				Errors:   []string{fmt.Sprintf("unexpected parse fault: %v", r)},
			}
		}
	}()

	text := Normalize(rawText)
	if text == "" {
		return &models.ParseResult{
			Found:    false,
			Category: "unknown",
			Errors:   []string{"Invalid or empty input provided"},
		}
	}

	result = &models.ParseResult{Category: models.CatalogueCustom}
	result.ExtractedDate = ExtractDate(text)

	entities := Segment(text)
	if len(entities) == 0 {
		return &models.ParseResult{
			Found:    false,
			Category: "unknown",
			Errors:   []string{"No workout entities could be identified"},
		}
	}

	matchedAny := false
	for _, e := range entities {
		parsed := Classify(e, ref.BarbellLifts)
		if m := MatchBenchmark(e.RawText, ref); m != nil {
			parsed.Benchmark = *m
			if !matchedAny {
				result.Category = m.SourceCatalogue
			}
			matchedAny = true
		}
		result.Workouts = append(result.Workouts, parsed)
	}

	result.Found = true
	if matchedAny {
		result.Confidence = matchedConfidence
	} else {
		result.Confidence = customConfidence
	}
	result.Suggestions = Suggest(rawText, ref.BenchmarkNames())
	return result
}
