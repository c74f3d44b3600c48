package refcache

import (
	"path/filepath"
	"testing"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
)

// TestSaveLoadRoundTrip verifies a snapshot survives a save/load cycle,
// including nullable fields and the lift join resolution.
func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cache, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	timeCap := 600
	ref := &parser.ReferenceData{
		GirlBenchmarks: []models.BenchmarkEntry{
			{ID: 1, Name: "Fran", Description: "21-15-9 thrusters and pull-ups", WorkoutType: models.TypeForTime, Scoring: "Time", TimeCapSeconds: &timeCap},
		},
		HeroBenchmarks: []models.BenchmarkEntry{
			{ID: 1, Name: "Murph", Description: "run, pull-ups, push-ups, squats, run", WorkoutType: models.TypeForTime, Scoring: "Time"},
		},
		BarbellLifts: []models.BarbellLift{
			{ID: 7, LiftName: "Thruster", Category: "squat", LiftType: "compound"},
		},
		LiftsForBenchmark: func(benchmarkID int, catalogue string) []models.BarbellLift {
			if benchmarkID == 1 && catalogue == models.CatalogueGirl {
				return []models.BarbellLift{{ID: 7, LiftName: "Thruster", Category: "squat", LiftType: "compound"}}
			}
			return nil
		},
	}

	if err := cache.Save(ref); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := cache.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(loaded.GirlBenchmarks) != 1 {
		t.Fatalf("girl benchmarks = %d, want 1", len(loaded.GirlBenchmarks))
	}
	fran := loaded.GirlBenchmarks[0]
	if fran.Name != "Fran" {
		t.Errorf("name = %q, want Fran", fran.Name)
	}
	if fran.TimeCapSeconds == nil || *fran.TimeCapSeconds != 600 {
		t.Errorf("time cap = %v, want 600", fran.TimeCapSeconds)
	}

	if len(loaded.HeroBenchmarks) != 1 || loaded.HeroBenchmarks[0].Name != "Murph" {
		t.Errorf("hero benchmarks = %v, want [Murph]", loaded.HeroBenchmarks)
	}
	if loaded.HeroBenchmarks[0].TimeCapSeconds != nil {
		t.Errorf("Murph time cap = %v, want nil", loaded.HeroBenchmarks[0].TimeCapSeconds)
	}

	if len(loaded.BarbellLifts) != 1 || loaded.BarbellLifts[0].LiftName != "Thruster" {
		t.Errorf("lifts = %v, want [Thruster]", loaded.BarbellLifts)
	}

	lifts := loaded.LiftsForBenchmark(1, models.CatalogueGirl)
	if len(lifts) != 1 || lifts[0].LiftName != "Thruster" {
		t.Errorf("resolved lifts = %v, want [Thruster]", lifts)
	}
	if got := loaded.LiftsForBenchmark(1, models.CatalogueHero); got != nil {
		t.Errorf("Murph lifts = %v, want nil", got)
	}
}

// TestSaveReplacesSnapshot verifies a second save discards the previous rows.
func TestSaveReplacesSnapshot(t *testing.T) {
	dir := t.TempDir()

	cache, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	first := &parser.ReferenceData{
		GirlBenchmarks: []models.BenchmarkEntry{{ID: 1, Name: "Fran"}, {ID: 2, Name: "Cindy"}},
	}
	if err := cache.Save(first); err != nil {
		t.Fatal(err)
	}

	second := &parser.ReferenceData{
		GirlBenchmarks: []models.BenchmarkEntry{{ID: 3, Name: "Helen"}},
	}
	if err := cache.Save(second); err != nil {
		t.Fatal(err)
	}

	loaded, err := cache.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.GirlBenchmarks) != 1 || loaded.GirlBenchmarks[0].Name != "Helen" {
		t.Errorf("girl benchmarks = %v, want [Helen]", loaded.GirlBenchmarks)
	}
}

// TestEmpty verifies the empty check before and after a save.
func TestEmpty(t *testing.T) {
	cache, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	empty, err := cache.Empty()
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Error("fresh cache reported non-empty")
	}

	if err := cache.Save(&parser.ReferenceData{
		GirlBenchmarks: []models.BenchmarkEntry{{ID: 1, Name: "Fran"}},
	}); err != nil {
		t.Fatal(err)
	}

	empty, err = cache.Empty()
	if err != nil {
		t.Fatal(err)
	}
	if empty {
		t.Error("populated cache reported empty")
	}
}

// TestOpenCreatesDir verifies Open creates nested cache directories.
func TestOpenCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	cache, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(%s): %v", dir, err)
	}
	cache.Close()
}
