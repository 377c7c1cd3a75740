// Package server exposes the solver over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/optgo/gurobi-go/internal/logging"
	"github.com/optgo/gurobi-go/pkg/gurobi"
)

type Server struct {
	solver Solver
	logger *zap.Logger

	registry      *prometheus.Registry
	solveTotal    *prometheus.CounterVec
	solveDuration prometheus.Histogram
}

// New builds a server around the given solver. Each server carries its own
// metrics registry so instances do not collide.
func New(solver Solver, logger *zap.Logger) *Server {
	s := &Server{
		solver:   solver,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		solveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solver_solve_requests_total",
			Help: "Solve requests by outcome.",
		}, []string{"outcome"}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "solver_solve_duration_seconds",
			Help:    "Wall time spent inside Solve.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	s.registry.MustRegister(s.solveTotal, s.solveDuration)
	return s
}

// Router returns the HTTP handler with all routes and middleware attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(logging.Middleware(s.logger))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Post("/v1/solve", s.handleSolve)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var problem Problem
	if err := json.NewDecoder(r.Body).Decode(&problem); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		s.solveTotal.WithLabelValues("bad_request").Inc()
		return
	}

	start := time.Now()
	result, err := s.solver.Solve(&problem)
	s.solveDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, gurobi.ErrNotBuilt):
		s.solveTotal.WithLabelValues("not_built").Inc()
		s.respondError(w, http.StatusServiceUnavailable, "solver library not available in this build")
		return
	case err != nil:
		s.logger.Error("solve failed", zap.Error(err))
		s.solveTotal.WithLabelValues("error").Inc()
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.solveTotal.WithLabelValues("ok").Inc()
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}
