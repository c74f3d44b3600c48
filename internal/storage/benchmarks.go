package storage

import (
	"context"
	"fmt"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
)

// catalogueTables maps catalogue identifiers to their tables. Lookup also
// guards against interpolating arbitrary strings into queries.
var catalogueTables = map[string]string{
	models.CatalogueGirl:    "girl_wods",
	models.CatalogueHero:    "hero_wods",
	models.CatalogueNotable: "notable_wods",
}

// ListBenchmarks retrieves one benchmark catalogue in seeded order.
func (db *DB) ListBenchmarks(ctx context.Context, catalogue string) ([]models.BenchmarkEntry, error) {
	table, ok := catalogueTables[catalogue]
	if !ok {
		return nil, fmt.Errorf("unknown benchmark catalogue %q", catalogue)
	}

	rows, err := db.Pool.Query(ctx, fmt.Sprintf(
		`SELECT id, name, description, workout_type, scoring, time_cap_seconds, total_effort
		 FROM %s
		 ORDER BY id ASC`, table))
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var entries []models.BenchmarkEntry
	for rows.Next() {
		var e models.BenchmarkEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.WorkoutType,
			&e.Scoring, &e.TimeCapSeconds, &e.TotalEffort); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetBenchmarkLifts retrieves the barbell lifts linked to one benchmark
// through the benchmark_lifts junction, filtered by catalogue.
func (db *DB) GetBenchmarkLifts(ctx context.Context, benchmarkID int, catalogue string) ([]models.BarbellLift, error) {
	if _, ok := catalogueTables[catalogue]; !ok {
		return nil, fmt.Errorf("unknown benchmark catalogue %q", catalogue)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT l.id, l.lift_name, l.category, l.lift_type
		 FROM benchmark_lifts bl
		 JOIN barbell_lifts l ON l.id = bl.lift_id
		 WHERE bl.benchmark_id = $1 AND bl.catalogue = $2
		 ORDER BY l.id ASC`,
		benchmarkID, catalogue)
	if err != nil {
		return nil, fmt.Errorf("querying benchmark lifts: %w", err)
	}
	defer rows.Close()

	return scanLiftRows(rows)
}
