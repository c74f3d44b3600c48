package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
	"github.com/akshatchaturvedi28/athletepro/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	LoadReferenceData(ctx context.Context, log *slog.Logger) (*parser.ReferenceData, error)
	ListBenchmarks(ctx context.Context, catalogue string) ([]models.BenchmarkEntry, error)
	GetBenchmarkLifts(ctx context.Context, benchmarkID int, catalogue string) ([]models.BarbellLift, error)
	ListBarbellLifts(ctx context.Context) ([]models.BarbellLift, error)
	QueryCustomWorkouts(ctx context.Context, start, end time.Time, limit int) ([]models.CustomWorkoutRow, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
