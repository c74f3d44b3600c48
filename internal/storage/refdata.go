package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
)

// LoadReferenceData fetches the benchmark catalogues and lift vocabulary and
// assembles them into the parser's read-only reference dataset. Fetched once
// per parse request; the parser itself performs no I/O.
func (db *DB) LoadReferenceData(ctx context.Context, log *slog.Logger) (*parser.ReferenceData, error) {
	girls, err := db.ListBenchmarks(ctx, models.CatalogueGirl)
	if err != nil {
		return nil, fmt.Errorf("loading girl catalogue: %w", err)
	}
	heroes, err := db.ListBenchmarks(ctx, models.CatalogueHero)
	if err != nil {
		return nil, fmt.Errorf("loading hero catalogue: %w", err)
	}
	notables, err := db.ListBenchmarks(ctx, models.CatalogueNotable)
	if err != nil {
		return nil, fmt.Errorf("loading notable catalogue: %w", err)
	}
	lifts, err := db.ListBarbellLifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading lift vocabulary: %w", err)
	}

	return &parser.ReferenceData{
		GirlBenchmarks:    girls,
		HeroBenchmarks:    heroes,
		NotableBenchmarks: notables,
		BarbellLifts:      lifts,
		LiftsForBenchmark: func(benchmarkID int, catalogue string) []models.BarbellLift {
			linked, err := db.GetBenchmarkLifts(ctx, benchmarkID, catalogue)
			if err != nil {
				log.Warn("benchmark lift lookup failed", "benchmark_id", benchmarkID, "catalogue", catalogue, "error", err)
				return nil
			}
			return linked
		},
	}, nil
}
