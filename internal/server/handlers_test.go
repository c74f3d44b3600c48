package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
	"github.com/google/uuid"
)

// stubStore satisfies Store with in-memory data for handler tests.
type stubStore struct {
	ref      *parser.ReferenceData
	refErr   error
	inserted []models.CustomWorkoutRow
	workouts []models.CustomWorkoutRow
}

func (s *stubStore) LoadReferenceData(ctx context.Context, log *slog.Logger) (*parser.ReferenceData, error) {
	if s.refErr != nil {
		return nil, s.refErr
	}
	if s.ref == nil {
		return &parser.ReferenceData{}, nil
	}
	return s.ref, nil
}

func (s *stubStore) ListBenchmarks(ctx context.Context, catalogue string) ([]models.BenchmarkEntry, error) {
	if s.ref == nil {
		return nil, nil
	}
	switch catalogue {
	case models.CatalogueGirl:
		return s.ref.GirlBenchmarks, nil
	case models.CatalogueHero:
		return s.ref.HeroBenchmarks, nil
	case models.CatalogueNotable:
		return s.ref.NotableBenchmarks, nil
	}
	return nil, nil
}

func (s *stubStore) GetBenchmarkLifts(ctx context.Context, benchmarkID int, catalogue string) ([]models.BarbellLift, error) {
	return nil, nil
}

func (s *stubStore) ListBarbellLifts(ctx context.Context) ([]models.BarbellLift, error) {
	if s.ref == nil {
		return nil, nil
	}
	return s.ref.BarbellLifts, nil
}

func (s *stubStore) InsertCustomWorkout(ctx context.Context, row models.CustomWorkoutRow) (bool, error) {
	s.inserted = append(s.inserted, row)
	return true, nil
}

func (s *stubStore) QueryCustomWorkouts(ctx context.Context, start, end time.Time, limit int) ([]models.CustomWorkoutRow, error) {
	return s.workouts, nil
}

func (s *stubStore) GetCustomWorkout(ctx context.Context, id uuid.UUID) (*models.CustomWorkoutRow, error) {
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			return &s.workouts[i], nil
		}
	}
	return nil, context.Canceled
}

func newTestServer(store *stubStore) *Server {
	return New(store, "test-key", slog.Default())
}

func postJSON(t *testing.T, srv *Server, path string, body any, apiKey string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// TestHandleParseBenchmark verifies the parse endpoint end-to-end: reference
// data load, pipeline run, matched-benchmark response.
func TestHandleParseBenchmark(t *testing.T) {
	store := &stubStore{ref: &parser.ReferenceData{
		GirlBenchmarks: []models.BenchmarkEntry{
			{ID: 1, Name: "Fran", Description: "21-15-9 thrusters and pull-ups"},
		},
	}}
	srv := newTestServer(store)

	rec := postJSON(t, srv, "/api/v1/parse", parseRequest{Text: "Fran\n21-15-9\nThrusters\nPull-ups"}, "test-key")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result models.ParseResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !result.Found {
		t.Errorf("found = false, errors = %v", result.Errors)
	}
	if result.Category != models.CatalogueGirl {
		t.Errorf("category = %q, want girl", result.Category)
	}
	if len(result.Workouts) != 1 {
		t.Fatalf("workouts = %d, want 1", len(result.Workouts))
	}
}

// TestHandleParseEmptyText verifies the empty-input contract surfaces as 422
// with the failure result in the body.
func TestHandleParseEmptyText(t *testing.T) {
	srv := newTestServer(&stubStore{})

	rec := postJSON(t, srv, "/api/v1/parse", parseRequest{Text: "   \n\n  "}, "test-key")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var result models.ParseResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result.Found {
		t.Error("found = true, want false")
	}
	if len(result.Errors) != 1 || result.Errors[0] != "Invalid or empty input provided" {
		t.Errorf("errors = %v", result.Errors)
	}
}

// TestHandleParseBadJSON verifies malformed bodies are rejected with 400.
func TestHandleParseBadJSON(t *testing.T) {
	srv := newTestServer(&stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader([]byte("{not json")))
	req.Header.Set("X-API-Key", "test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleParseRequiresKey verifies the parse endpoint sits behind API key
// auth.
func TestHandleParseRequiresKey(t *testing.T) {
	srv := newTestServer(&stubStore{})

	rec := postJSON(t, srv, "/api/v1/parse", parseRequest{Text: "Fran"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestHandleCreateWorkout verifies persistence of an accepted parse with
// defaulted fields.
func TestHandleCreateWorkout(t *testing.T) {
	store := &stubStore{}
	srv := newTestServer(store)

	rec := postJSON(t, srv, "/api/v1/workouts", createWorkoutRequest{
		Name:        "METCON",
		Description: "AMRAP 12:\n10 burpees",
		WorkoutType: models.TypeAMRAP,
		Scoring:     "Rounds + Reps",
		TotalEffort: 120,
		WorkoutDate: "2026-02-19",
		CreatedBy:   "coach",
	}, "test-key")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted = %d, want 1", len(store.inserted))
	}
	row := store.inserted[0]
	if row.ID == uuid.Nil {
		t.Error("row.ID is nil, want generated uuid")
	}
	if row.SourceCatalogue != models.CatalogueCustom {
		t.Errorf("SourceCatalogue = %q, want custom default", row.SourceCatalogue)
	}
	if row.WorkoutDate == nil || row.WorkoutDate.Format("2006-01-02") != "2026-02-19" {
		t.Errorf("WorkoutDate = %v, want 2026-02-19", row.WorkoutDate)
	}
}

// TestHandleCreateWorkoutMissingName verifies the name is required.
func TestHandleCreateWorkoutMissingName(t *testing.T) {
	srv := newTestServer(&stubStore{})

	rec := postJSON(t, srv, "/api/v1/workouts", createWorkoutRequest{Description: "no name"}, "test-key")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleGetWorkoutInvalidID verifies malformed IDs are rejected.
func TestHandleGetWorkoutInvalidID(t *testing.T) {
	srv := newTestServer(&stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleListBenchmarksDefaultsToGirl verifies the catalogue parameter
// defaults to the girl catalogue.
func TestHandleListBenchmarksDefaultsToGirl(t *testing.T) {
	store := &stubStore{ref: &parser.ReferenceData{
		GirlBenchmarks: []models.BenchmarkEntry{{ID: 1, Name: "Fran"}},
		HeroBenchmarks: []models.BenchmarkEntry{{ID: 2, Name: "Murph"}},
	}}
	srv := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/benchmarks", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var entries []models.BenchmarkEntry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Fran" {
		t.Errorf("entries = %v, want [Fran]", entries)
	}
}
