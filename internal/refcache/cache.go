// Package refcache persists a local SQLite copy of the benchmark catalogues
// and lift vocabulary so the parse CLI works without a database connection.
package refcache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
)

// Cache is a file-backed snapshot of reference data.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite cache database at dir/refcache.db.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "refcache.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS benchmarks (
		catalogue        TEXT NOT NULL,
		id               INTEGER NOT NULL,
		name             TEXT NOT NULL,
		description      TEXT NOT NULL,
		workout_type     TEXT NOT NULL,
		scoring          TEXT NOT NULL,
		time_cap_seconds INTEGER,
		total_effort     INTEGER,
		PRIMARY KEY (catalogue, id)
	);
	CREATE TABLE IF NOT EXISTS barbell_lifts (
		id        INTEGER PRIMARY KEY,
		lift_name TEXT NOT NULL,
		category  TEXT NOT NULL,
		lift_type TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS benchmark_lifts (
		catalogue    TEXT NOT NULL,
		benchmark_id INTEGER NOT NULL,
		lift_id      INTEGER NOT NULL,
		PRIMARY KEY (catalogue, benchmark_id, lift_id)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache tables: %w", err)
	}

	return &Cache{db: db}, nil
}

// Save replaces the cached snapshot with the given reference data. Lift
// joins are resolved through the dataset's own callback so a server-backed
// dataset is flattened into plain rows.
func (c *Cache) Save(ref *parser.ReferenceData) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("starting cache save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"benchmarks", "barbell_lifts", "benchmark_lifts"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	catalogues := []struct {
		name    string
		entries []models.BenchmarkEntry
	}{
		{models.CatalogueGirl, ref.GirlBenchmarks},
		{models.CatalogueHero, ref.HeroBenchmarks},
		{models.CatalogueNotable, ref.NotableBenchmarks},
	}
	for _, cat := range catalogues {
		for _, e := range cat.entries {
			_, err := tx.Exec(
				`INSERT INTO benchmarks (catalogue, id, name, description, workout_type, scoring, time_cap_seconds, total_effort)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				cat.name, e.ID, e.Name, e.Description, e.WorkoutType, e.Scoring, e.TimeCapSeconds, e.TotalEffort,
			)
			if err != nil {
				return fmt.Errorf("caching %s benchmark %q: %w", cat.name, e.Name, err)
			}

			if ref.LiftsForBenchmark == nil {
				continue
			}
			for _, lift := range ref.LiftsForBenchmark(e.ID, cat.name) {
				_, err := tx.Exec(
					`INSERT OR IGNORE INTO benchmark_lifts (catalogue, benchmark_id, lift_id) VALUES (?, ?, ?)`,
					cat.name, e.ID, lift.ID,
				)
				if err != nil {
					return fmt.Errorf("caching lift join for %q: %w", e.Name, err)
				}
			}
		}
	}

	for _, lift := range ref.BarbellLifts {
		_, err := tx.Exec(
			`INSERT INTO barbell_lifts (id, lift_name, category, lift_type) VALUES (?, ?, ?, ?)`,
			lift.ID, lift.LiftName, lift.Category, lift.LiftType,
		)
		if err != nil {
			return fmt.Errorf("caching lift %q: %w", lift.LiftName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cache save: %w", err)
	}
	return nil
}

// Load reads the cached snapshot. The lift-resolution callback is backed by
// an in-memory copy of the join table, so parses run with no further I/O.
func (c *Cache) Load() (*parser.ReferenceData, error) {
	ref := &parser.ReferenceData{}

	rows, err := c.db.Query(
		`SELECT catalogue, id, name, description, workout_type, scoring, time_cap_seconds, total_effort
		 FROM benchmarks ORDER BY catalogue, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("reading cached benchmarks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var catalogue string
		var e models.BenchmarkEntry
		var timeCap, effort sql.NullInt64
		if err := rows.Scan(&catalogue, &e.ID, &e.Name, &e.Description, &e.WorkoutType, &e.Scoring, &timeCap, &effort); err != nil {
			return nil, fmt.Errorf("scanning cached benchmark: %w", err)
		}
		if timeCap.Valid {
			v := int(timeCap.Int64)
			e.TimeCapSeconds = &v
		}
		if effort.Valid {
			v := int(effort.Int64)
			e.TotalEffort = &v
		}
		switch catalogue {
		case models.CatalogueGirl:
			ref.GirlBenchmarks = append(ref.GirlBenchmarks, e)
		case models.CatalogueHero:
			ref.HeroBenchmarks = append(ref.HeroBenchmarks, e)
		case models.CatalogueNotable:
			ref.NotableBenchmarks = append(ref.NotableBenchmarks, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading cached benchmarks: %w", err)
	}

	liftsByID := map[int]models.BarbellLift{}
	liftRows, err := c.db.Query(`SELECT id, lift_name, category, lift_type FROM barbell_lifts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("reading cached lifts: %w", err)
	}
	defer liftRows.Close()

	for liftRows.Next() {
		var lift models.BarbellLift
		if err := liftRows.Scan(&lift.ID, &lift.LiftName, &lift.Category, &lift.LiftType); err != nil {
			return nil, fmt.Errorf("scanning cached lift: %w", err)
		}
		ref.BarbellLifts = append(ref.BarbellLifts, lift)
		liftsByID[lift.ID] = lift
	}
	if err := liftRows.Err(); err != nil {
		return nil, fmt.Errorf("reading cached lifts: %w", err)
	}

	joins := map[string][]models.BarbellLift{}
	joinRows, err := c.db.Query(`SELECT catalogue, benchmark_id, lift_id FROM benchmark_lifts`)
	if err != nil {
		return nil, fmt.Errorf("reading cached lift joins: %w", err)
	}
	defer joinRows.Close()

	for joinRows.Next() {
		var catalogue string
		var benchmarkID, liftID int
		if err := joinRows.Scan(&catalogue, &benchmarkID, &liftID); err != nil {
			return nil, fmt.Errorf("scanning cached lift join: %w", err)
		}
		if lift, ok := liftsByID[liftID]; ok {
			key := joinKey(benchmarkID, catalogue)
			joins[key] = append(joins[key], lift)
		}
	}
	if err := joinRows.Err(); err != nil {
		return nil, fmt.Errorf("reading cached lift joins: %w", err)
	}

	ref.LiftsForBenchmark = func(benchmarkID int, catalogue string) []models.BarbellLift {
		return joins[joinKey(benchmarkID, catalogue)]
	}
	return ref, nil
}

func joinKey(benchmarkID int, catalogue string) string {
	return fmt.Sprintf("%s/%d", catalogue, benchmarkID)
}

// Empty reports whether the cache holds no benchmarks yet.
func (c *Cache) Empty() (bool, error) {
	var count int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM benchmarks`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}
