package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	swgui "github.com/swaggest/swgui/v5cdn"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/config"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/store"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/internal/telemetry"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/analytics"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/scenario"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/validation"
)

//go:embed static/openapi.yaml
var openapi string

// maxBodyBytes caps scenario request bodies.
const maxBodyBytes = 1 << 20

// Server exposes the model over HTTP for interactive what-if runs.
type Server struct {
	port          int
	workers       int
	maxPopulation int
	logger        *slog.Logger
	runs          *store.Store
	metrics       *telemetry.Metrics
}

// New creates a server from process settings. runs and metrics may be nil.
func New(cfg config.Config, logger *slog.Logger, runs *store.Store, metrics *telemetry.Metrics) *Server {
	return &Server{
		port:          cfg.Port,
		workers:       cfg.Workers,
		maxPopulation: cfg.MaxPopulation,
		logger:        logger,
		runs:          runs,
		metrics:       metrics,
	}
}

// Handler returns the instrumented route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/defaults", s.handleDefaults)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/run", s.handleRun)
	mux.HandleFunc("GET /api/runs", s.handleListRuns)
	mux.HandleFunc("GET /api/runs/{id}", s.handleGetRun)
	mux.Handle("/api/docs/", swgui.New("Migrant Accommodation Model", "/api/docs/openapi.yaml", "/api/docs/"))
	mux.HandleFunc("GET /api/docs/openapi.yaml", s.handleOpenAPI)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return otelhttp.NewHandler(mux, "migrants")
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", "http://localhost"+srv.Addr, "docs", "/api/docs/")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Economic Migrants</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Economic Migrants</h1>
<p>Venezuelan Migrants in Colombia</p>
<p>POST a scenario to <code>/api/run</code>, or browse the <a style="color:#8cf" href="/api/docs/">API docs</a>.</p>
</div>
</body></html>`)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	fmt.Fprint(w, openapi)
}

func (s *Server) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scenario.Default())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	sc, err := decodeScenario(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.validate(sc))
}

// validate runs the schema checks plus the configured population cap.
func (s *Server) validate(sc *scenario.Scenario) *validation.Report {
	report := validation.ValidateScenario(sc)
	validation.ValidatePopulationLimit(report, sc, s.maxPopulation)
	return report
}

// runResponse pairs a result with the merged schema and analytical report.
type runResponse struct {
	RunID      *uuid.UUID         `json:"run_id,omitempty"`
	Result     *analytics.Result  `json:"result,omitempty"`
	Validation *validation.Report `json:"validation"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	sc, err := decodeScenario(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if sc.Workers == 0 {
		sc.Workers = s.workers
	}

	report := s.validate(sc)
	if !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, runResponse{Validation: report})
		return
	}

	ctx := r.Context()
	start := time.Now()
	result, analyticsReport, err := analytics.RunScenario(ctx, sc)
	if errors.Is(err, population.ErrInvalidParameter) {
		report.AddParameterError(err)
		writeJSON(w, http.StatusUnprocessableEntity, runResponse{Validation: report})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	elapsed := time.Since(start)
	report.Merge(analyticsReport)
	s.metrics.RecordRun(ctx, "http", result, elapsed)

	resp := runResponse{Result: result, Validation: report}
	if s.runs != nil {
		run := store.FromResult(result, time.Now())
		if err := s.runs.Save(ctx, run); err != nil {
			s.logger.ErrorContext(ctx, "recording run failed", "error", err)
		} else {
			resp.RunID = &run.ID
		}
	}

	s.logger.InfoContext(ctx, "run complete",
		"scenario", result.Scenario,
		"population", result.Summary.Population,
		"elapsed", elapsed)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("run history is not configured"))
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		limit = n
	}
	runs, err := s.runs.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("run history is not configured"))
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid run id: %w", err))
		return
	}
	run, err := s.runs.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// decodeScenario reads a JSON scenario from the body on top of the
// defaults, so omitted fields keep their default values.
func decodeScenario(r *http.Request) (*scenario.Scenario, error) {
	sc := scenario.Default()
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	return sc, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
