package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
)

// HTTPClient implements DataSource by calling the AthletePro REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) ListBenchmarks(ctx context.Context, catalogue string) ([]models.BenchmarkEntry, error) {
	params := url.Values{}
	params.Set("catalogue", catalogue)

	body, err := c.get(ctx, "/api/v1/benchmarks", params)
	if err != nil {
		return nil, err
	}

	var entries []models.BenchmarkEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode benchmarks: %w", err)
	}
	return entries, nil
}

func (c *HTTPClient) GetBenchmarkLifts(ctx context.Context, benchmarkID int, catalogue string) ([]models.BarbellLift, error) {
	path := fmt.Sprintf("/api/v1/benchmarks/%s/%d/lifts", url.PathEscape(catalogue), benchmarkID)

	body, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var lifts []models.BarbellLift
	if err := json.Unmarshal(body, &lifts); err != nil {
		return nil, fmt.Errorf("httpclient: decode benchmark lifts: %w", err)
	}
	return lifts, nil
}

func (c *HTTPClient) ListBarbellLifts(ctx context.Context) ([]models.BarbellLift, error) {
	body, err := c.get(ctx, "/api/v1/lifts", nil)
	if err != nil {
		return nil, err
	}

	var lifts []models.BarbellLift
	if err := json.Unmarshal(body, &lifts); err != nil {
		return nil, fmt.Errorf("httpclient: decode lifts: %w", err)
	}
	return lifts, nil
}

func (c *HTTPClient) QueryCustomWorkouts(ctx context.Context, start, end time.Time, limit int) ([]models.CustomWorkoutRow, error) {
	params := url.Values{}
	params.Set("start", start.Format(time.RFC3339))
	params.Set("end", end.Format(time.RFC3339))
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/api/v1/workouts", params)
	if err != nil {
		return nil, err
	}

	var workouts []models.CustomWorkoutRow
	if err := json.Unmarshal(body, &workouts); err != nil {
		return nil, fmt.Errorf("httpclient: decode workouts: %w", err)
	}
	return workouts, nil
}

// LoadReferenceData fetches all three benchmark catalogues and the lift
// vocabulary over the REST API. The lift-resolution callback issues further
// requests on demand; lookup failures degrade to a match without lift detail.
func (c *HTTPClient) LoadReferenceData(ctx context.Context, log *slog.Logger) (*parser.ReferenceData, error) {
	girls, err := c.ListBenchmarks(ctx, models.CatalogueGirl)
	if err != nil {
		return nil, fmt.Errorf("loading girl benchmarks: %w", err)
	}
	heroes, err := c.ListBenchmarks(ctx, models.CatalogueHero)
	if err != nil {
		return nil, fmt.Errorf("loading hero benchmarks: %w", err)
	}
	notables, err := c.ListBenchmarks(ctx, models.CatalogueNotable)
	if err != nil {
		return nil, fmt.Errorf("loading notable benchmarks: %w", err)
	}
	lifts, err := c.ListBarbellLifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading barbell lifts: %w", err)
	}

	return &parser.ReferenceData{
		GirlBenchmarks:    girls,
		HeroBenchmarks:    heroes,
		NotableBenchmarks: notables,
		BarbellLifts:      lifts,
		LiftsForBenchmark: func(benchmarkID int, catalogue string) []models.BarbellLift {
			resolved, err := c.GetBenchmarkLifts(ctx, benchmarkID, catalogue)
			if err != nil {
				log.Warn("benchmark lift lookup failed", "benchmark_id", benchmarkID, "catalogue", catalogue, "error", err)
				return nil
			}
			return resolved
		},
	}, nil
}
