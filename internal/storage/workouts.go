package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/google/uuid"
)

// InsertCustomWorkout inserts a custom workout row. Returns true if
// inserted, false if a row with the same ID already exists.
func (db *DB) InsertCustomWorkout(ctx context.Context, row models.CustomWorkoutRow) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO custom_workouts (id, name, description, workout_type, scoring,
		 time_cap_seconds, total_effort, source_catalogue, benchmark_id, workout_date,
		 created_by, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 ON CONFLICT DO NOTHING`,
		row.ID, row.Name, row.Description, row.WorkoutType, row.Scoring,
		row.TimeCapSeconds, row.TotalEffort, row.SourceCatalogue, row.BenchmarkID,
		row.WorkoutDate, row.CreatedBy, row.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("inserting custom workout: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// QueryCustomWorkouts retrieves custom workouts created in a time range,
// newest first.
func (db *DB) QueryCustomWorkouts(ctx context.Context, start, end time.Time, limit int) ([]models.CustomWorkoutRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, description, workout_type, scoring, time_cap_seconds,
		 total_effort, source_catalogue, benchmark_id, workout_date, created_by, created_at
		 FROM custom_workouts
		 WHERE created_at >= $1 AND created_at < $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("querying custom workouts: %w", err)
	}
	defer rows.Close()

	var result []models.CustomWorkoutRow
	for rows.Next() {
		var w models.CustomWorkoutRow
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.WorkoutType, &w.Scoring,
			&w.TimeCapSeconds, &w.TotalEffort, &w.SourceCatalogue, &w.BenchmarkID,
			&w.WorkoutDate, &w.CreatedBy, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning custom workout: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// GetCustomWorkout retrieves a single custom workout by ID.
func (db *DB) GetCustomWorkout(ctx context.Context, id uuid.UUID) (*models.CustomWorkoutRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, description, workout_type, scoring, time_cap_seconds,
		 total_effort, source_catalogue, benchmark_id, workout_date, created_by, created_at
		 FROM custom_workouts
		 WHERE id = $1`,
		id)

	var w models.CustomWorkoutRow
	if err := row.Scan(&w.ID, &w.Name, &w.Description, &w.WorkoutType, &w.Scoring,
		&w.TimeCapSeconds, &w.TotalEffort, &w.SourceCatalogue, &w.BenchmarkID,
		&w.WorkoutDate, &w.CreatedBy, &w.CreatedAt); err != nil {
		return nil, fmt.Errorf("querying custom workout: %w", err)
	}
	return &w, nil
}
