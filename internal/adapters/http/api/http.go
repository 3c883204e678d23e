// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parvinm/screenwise/internal/domain/form"
	"github.com/parvinm/screenwise/internal/domain/model"
	"github.com/parvinm/screenwise/internal/domain/scoring"
	"github.com/parvinm/screenwise/pkg/metrics"
)

// Dependencies required by the HTTP handlers. An interface bundle keeps
// the handler layer loosely coupled to the app service.
type Dependencies interface {
	// Assess scores a validated form; the bool reports a duplicate
	// submission id.
	Assess(ctx context.Context, submissionID string, v form.Values) (scoring.Result, bool, error)

	// Recent returns up to n recorded assessments, newest first.
	Recent(ctx context.Context, n int) ([]model.Assessment, error)
}

// Server wires the HTTP routes for the business API.
type Server struct {
	assessHandler    *AssessHandler
	historyHandler   *HistoryHandler
	statsHandler     *StatsHandler
	healthHandler    *HealthHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxHistoryLimit int) *Server {
	return &Server{
		assessHandler:    NewAssessHandler(deps),
		historyHandler:   NewHistoryHandler(deps, maxHistoryLimit),
		statsHandler:     NewStatsHandler(statsProvider),
		healthHandler:    NewHealthHandler(),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/assess", MetricsMiddleware(s.assessHandler.HandleAssess, "assess"))
	mux.HandleFunc("/history", MetricsMiddleware(s.historyHandler.HandleGetHistory, "history"))
}

// assessRequest mirrors the OpenAPI schema for POST /assess. The form
// fields are promoted from the draft so the body stays flat.
type assessRequest struct {
	SubmissionID string `json:"submission_id"`
	form.Draft
}

// assessResponse is the body returned for a scored submission.
type assessResponse struct {
	SubmissionID string         `json:"submission_id,omitempty"`
	Duplicate    bool           `json:"duplicate"`
	Scores       scoring.Scores `json:"scores"`
	Average      float64        `json:"average"`
	HarmLevel    string         `json:"harm_level"`
	Suggestions  string         `json:"suggestions"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
