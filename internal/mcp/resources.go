package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) benchmarkCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog := map[string][]models.BenchmarkEntry{}
	for _, catalogue := range []string{models.CatalogueGirl, models.CatalogueHero, models.CatalogueNotable} {
		entries, err := h.ds.ListBenchmarks(ctx, catalogue)
		if err != nil {
			return nil, err
		}
		catalog[catalogue] = entries
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) recentCustomWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -14)

	workouts, err := h.ds.QueryCustomWorkouts(ctx, start, end, 50)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(workouts)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
