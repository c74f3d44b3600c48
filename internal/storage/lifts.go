package storage

import (
	"context"
	"fmt"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/jackc/pgx/v5"
)

// ListBarbellLifts retrieves the full lift vocabulary in seeded order.
// Order matters: the classifier preserves vocabulary iteration order in its
// output.
func (db *DB) ListBarbellLifts(ctx context.Context) ([]models.BarbellLift, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, lift_name, category, lift_type
		 FROM barbell_lifts
		 ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying barbell lifts: %w", err)
	}
	defer rows.Close()

	return scanLiftRows(rows)
}

func scanLiftRows(rows pgx.Rows) ([]models.BarbellLift, error) {
	var lifts []models.BarbellLift
	for rows.Next() {
		var l models.BarbellLift
		if err := rows.Scan(&l.ID, &l.LiftName, &l.Category, &l.LiftType); err != nil {
			return nil, fmt.Errorf("scanning lift: %w", err)
		}
		lifts = append(lifts, l)
	}
	return lifts, rows.Err()
}
