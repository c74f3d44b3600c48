package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolParseWorkoutText = mcp.NewTool("parse_workout_text",
	mcp.WithDescription("Parse a free-text workout description (pasted whiteboard programming, coach notes) into structured workouts. Returns detected sections, workout type, scoring, time cap, effort estimate, barbell lifts, and any benchmark match."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Raw workout text, possibly multiple sections separated by headers like STRENGTH or METCON")),
)

var toolSearchBenchmarks = mcp.NewTool("search_benchmarks",
	mcp.WithDescription("Search the benchmark catalogues by name. Matches case-insensitive substrings and also returns close-spelling suggestions for likely typos."),
	mcp.WithString("query", mcp.Required(), mcp.Description("Benchmark name or fragment (e.g. 'fran', 'murph')")),
	mcp.WithString("catalogue", mcp.Description("Restrict to one catalogue. Defaults to all."), mcp.Enum("girl", "hero", "notable", "all")),
)

var toolListBarbellLifts = mcp.NewTool("list_barbell_lifts",
	mcp.WithDescription("List the barbell lift vocabulary with lift categories and types."),
)

var toolGetCustomWorkouts = mcp.NewTool("get_custom_workouts",
	mcp.WithDescription("Query logged custom workouts in a date range, most recent first."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithNumber("limit", mcp.Description("Maximum rows to return. Defaults to 100.")),
)

// --- Tool handlers ---

func (h *handlers) parseWorkoutText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	ref, err := h.ds.LoadReferenceData(ctx, h.log)
	if err != nil {
		h.log.Error("mcp parse_workout_text reference load", "error", err)
		return mcp.NewToolResultError("reference data load failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(parser.Parse(text, ref))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// benchmarkHit pairs a catalogue entry with the catalogue it came from.
type benchmarkHit struct {
	Catalogue string                `json:"catalogue"`
	Entry     models.BenchmarkEntry `json:"entry"`
}

func (h *handlers) searchBenchmarks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	catalogues := []string{models.CatalogueGirl, models.CatalogueHero, models.CatalogueNotable}
	if c := req.GetString("catalogue", "all"); c != "all" {
		catalogues = []string{c}
	}

	ref := &parser.ReferenceData{}
	var hits []benchmarkHit
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, catalogue := range catalogues {
		entries, err := h.ds.ListBenchmarks(ctx, catalogue)
		if err != nil {
			h.log.Error("mcp search_benchmarks", "catalogue", catalogue, "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Name), needle) {
				hits = append(hits, benchmarkHit{Catalogue: catalogue, Entry: e})
			}
		}
		switch catalogue {
		case models.CatalogueGirl:
			ref.GirlBenchmarks = entries
		case models.CatalogueHero:
			ref.HeroBenchmarks = entries
		case models.CatalogueNotable:
			ref.NotableBenchmarks = entries
		}
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"query":       query,
		"matches":     hits,
		"suggestions": parser.Suggest(query, ref.BenchmarkNames()),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listBarbellLifts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lifts, err := h.ds.ListBarbellLifts(ctx)
	if err != nil {
		h.log.Error("mcp list_barbell_lifts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(lifts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCustomWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	limit := req.GetInt("limit", 100)
	if limit < 1 {
		return mcp.NewToolResultError("limit must be positive"), nil
	}

	workouts, err := h.ds.QueryCustomWorkouts(ctx, start, end, limit)
	if err != nil {
		h.log.Error("mcp get_custom_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
