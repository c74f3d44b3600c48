package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type parseRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	ref, err := s.store.LoadReferenceData(r.Context(), s.log)
	if err != nil {
		s.log.Error("reference data load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	result := parser.Parse(req.Text, ref)
	if !result.Found {
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type createWorkoutRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	WorkoutType     string `json:"workout_type"`
	Scoring         string `json:"scoring"`
	TimeCapSeconds  *int   `json:"time_cap_seconds,omitempty"`
	TotalEffort     int    `json:"total_effort"`
	SourceCatalogue string `json:"source_catalogue"`
	BenchmarkID     *int   `json:"benchmark_id,omitempty"`
	WorkoutDate     string `json:"workout_date,omitempty"`
	CreatedBy       string `json:"created_by"`
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req createWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	row := models.CustomWorkoutRow{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		WorkoutType:     req.WorkoutType,
		Scoring:         req.Scoring,
		TimeCapSeconds:  req.TimeCapSeconds,
		TotalEffort:     req.TotalEffort,
		SourceCatalogue: req.SourceCatalogue,
		BenchmarkID:     req.BenchmarkID,
		CreatedBy:       req.CreatedBy,
		CreatedAt:       time.Now().UTC(),
	}
	if row.WorkoutType == "" {
		row.WorkoutType = models.TypeForTime
	}
	if row.SourceCatalogue == "" {
		row.SourceCatalogue = models.CatalogueCustom
	}
	if req.WorkoutDate != "" {
		d, err := time.Parse("2006-01-02", req.WorkoutDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout_date, want YYYY-MM-DD"})
			return
		}
		row.WorkoutDate = &d
	}

	inserted, err := s.store.InsertCustomWorkout(r.Context(), row)
	if err != nil {
		s.log.Error("workout insert failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !inserted {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "workout already exists"})
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleQueryWorkouts(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	workouts, err := s.store.QueryCustomWorkouts(r.Context(), start, end, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	workout, err := s.store.GetCustomWorkout(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleListBenchmarks(w http.ResponseWriter, r *http.Request) {
	catalogue := r.URL.Query().Get("catalogue")
	if catalogue == "" {
		catalogue = models.CatalogueGirl
	}

	entries, err := s.store.ListBenchmarks(r.Context(), catalogue)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleBenchmarkLifts(w http.ResponseWriter, r *http.Request) {
	catalogue := chi.URLParam(r, "catalogue")
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid benchmark ID"})
		return
	}

	lifts, err := s.store.GetBenchmarkLifts(r.Context(), id, catalogue)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, lifts)
}

func (s *Server) handleListLifts(w http.ResponseWriter, r *http.Request) {
	lifts, err := s.store.ListBarbellLifts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, lifts)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 30 days
		end = time.Now()
		start = end.AddDate(0, 0, -30)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
