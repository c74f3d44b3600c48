package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("AthletePro", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("AthletePro workout parsing server. Parse free-text gym workouts into structured entities, search the benchmark catalogues (girl, hero, notable), list the barbell lift vocabulary, and browse logged custom workouts."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolParseWorkoutText, Handler: h.parseWorkoutText},
		server.ServerTool{Tool: toolSearchBenchmarks, Handler: h.searchBenchmarks},
		server.ServerTool{Tool: toolListBarbellLifts, Handler: h.listBarbellLifts},
		server.ServerTool{Tool: toolGetCustomWorkouts, Handler: h.getCustomWorkouts},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resBenchmarkCatalog, Handler: h.benchmarkCatalog},
		server.ServerResource{Resource: resRecentCustomWorkouts, Handler: h.recentCustomWorkouts},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resBenchmarkCatalog = mcp.NewResource(
	"athletepro://benchmark_catalog",
	"Benchmark Catalog",
	mcp.WithResourceDescription("All benchmark workouts across the girl, hero, and notable catalogues"),
	mcp.WithMIMEType("application/json"),
)

var resRecentCustomWorkouts = mcp.NewResource(
	"athletepro://recent_custom_workouts",
	"Recent Custom Workouts",
	mcp.WithResourceDescription("Custom workouts logged in the last 14 days"),
	mcp.WithMIMEType("application/json"),
)
