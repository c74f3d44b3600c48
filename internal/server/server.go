package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
	"github.com/akshatchaturvedi28/athletepro/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Store abstracts the repository layer for HTTP handlers.
type Store interface {
	LoadReferenceData(ctx context.Context, log *slog.Logger) (*parser.ReferenceData, error)
	ListBenchmarks(ctx context.Context, catalogue string) ([]models.BenchmarkEntry, error)
	GetBenchmarkLifts(ctx context.Context, benchmarkID int, catalogue string) ([]models.BarbellLift, error)
	ListBarbellLifts(ctx context.Context) ([]models.BarbellLift, error)
	InsertCustomWorkout(ctx context.Context, row models.CustomWorkoutRow) (bool, error)
	QueryCustomWorkouts(ctx context.Context, start, end time.Time, limit int) ([]models.CustomWorkoutRow, error)
	GetCustomWorkout(ctx context.Context, id uuid.UUID) (*models.CustomWorkoutRow, error)
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Mutating endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/parse", s.handleParse)
		r.Post("/api/v1/workouts", s.handleCreateWorkout)
	})

	// Read endpoints
	s.router.Get("/api/v1/workouts", s.handleQueryWorkouts)
	s.router.Get("/api/v1/workouts/{id}", s.handleGetWorkout)
	s.router.Get("/api/v1/benchmarks", s.handleListBenchmarks)
	s.router.Get("/api/v1/benchmarks/{catalogue}/{id}/lifts", s.handleBenchmarkLifts)
	s.router.Get("/api/v1/lifts", s.handleListLifts)
}
