// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/okian/podium/internal/adapters/render"
	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/analytics"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Selectors(ctx context.Context) (types.Selectors, error)
	MedalTally(ctx context.Context, year, region string) ([]types.TallyRow, error)
	OverTime(ctx context.Context, col analytics.Column) ([]types.YearCount, error)
	TopAthletes(ctx context.Context, sport string, limit int) ([]types.AthleteMedals, error)
	YearTally(ctx context.Context, region string) ([]types.YearCount, error)
	CountryHeatmap(ctx context.Context, region string) (types.Heatmap, error)
	TopCountryAthletes(ctx context.Context, region string, limit int) ([]types.AthleteMedals, error)
	Physique(ctx context.Context, sport string) ([]types.Physique, error)
	GenderParticipation(ctx context.Context) ([]types.GenderYear, error)
	Overview(ctx context.Context) (types.Overview, error)
	EventsPerSport(ctx context.Context) ([]types.SportYearCount, error)
	AgeDistributions(ctx context.Context) ([]types.Distribution, error)
	GoldMedalistAges(ctx context.Context) ([]types.Distribution, error)
	Suggest(ctx context.Context, kind, q string, n int) ([]string, error)
}

// Server wires HTTP routes for the analytics API.
type Server struct {
	deps             Dependencies
	log              logger.Logger
	limiter          *rate.Limiter
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	dashboardHandler *dashboardHandler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logger.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRateLimit limits /api requests to rps with the given burst.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		deps:             deps,
		log:              logger.Nop(),
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		dashboardHandler: newdashboardHandler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("GET /{$}", s.dashboardHandler.HandleDashboard)

	s.api(mux, "GET /api/selectors", "selectors", s.handleSelectors)
	s.api(mux, "GET /api/medal-tally", "medal_tally", s.handleMedalTally)
	s.api(mux, "GET /api/over-time", "over_time", s.handleOverTime)
	s.api(mux, "GET /api/overview", "overview", s.handleOverview)
	s.api(mux, "GET /api/events-per-sport", "events_per_sport", s.handleEventsPerSport)
	s.api(mux, "GET /api/participation/gender", "gender", s.handleGender)
	s.api(mux, "GET /api/athletes/top", "top_athletes", s.handleTopAthletes)
	s.api(mux, "GET /api/athletes/physique", "physique", s.handlePhysique)
	s.api(mux, "GET /api/athletes/ages", "ages", s.handleAges)
	s.api(mux, "GET /api/countries/{region}/medals", "country_medals", s.handleYearTally)
	s.api(mux, "GET /api/countries/{region}/heatmap", "country_heatmap", s.handleHeatmap)
	s.api(mux, "GET /api/countries/{region}/athletes", "country_athletes", s.handleCountryAthletes)
	s.api(mux, "GET /api/suggest", "suggest", s.handleSuggest)

	s.log.Debug(ctx, "api routes registered", logger.Bool("rate_limited", s.limiter != nil))
}

// Handler wraps mux with the request-id middleware.
func (s *Server) Handler(mux *http.ServeMux) http.Handler {
	return RequestIDMiddleware(mux)
}

func (s *Server) api(mux *http.ServeMux, pattern, endpoint string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, MetricsMiddleware(RateLimitMiddleware(s.limiter, endpoint, h), endpoint))
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

// fail maps an error from a handler or the service to a response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		s.log.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.String("request_id", RequestID(r.Context())),
			logger.Error(err))
	}
	writeError(w, status, code, err)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidLimit):
		return http.StatusBadRequest, "limit_exceeded"
	case errors.Is(err, service.ErrUnknownKind):
		return http.StatusBadRequest, "unknown_kind"
	case errors.Is(err, analytics.ErrUnknownColumn):
		return http.StatusBadRequest, "unknown_column"
	case errors.Is(err, render.ErrUnknownFormat):
		return http.StatusBadRequest, "unknown_format"
	case errors.Is(err, render.ErrUnsupported):
		return http.StatusNotAcceptable, "format_unsupported"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "not_ready"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// respond writes v in the format named by ?format. CSV is rendered into a
// buffer first so an unsupported shape still yields a JSON error.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	f, err := format(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if f == render.FormatJSON {
		writeJSON(w, http.StatusOK, v)
		return
	}
	var buf bytes.Buffer
	if err := render.CSV(&buf, v); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func format(r *http.Request) (render.Format, error) {
	return render.ParseFormat(r.URL.Query().Get("format"))
}

// selector returns the query value of key, or Overall when absent.
func selector(r *http.Request, key string) string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return types.Overall
	}
	return v
}

// limitParam parses ?limit. Absent means 0, which the service reads as
// its configured default.
func limitParam(r *http.Request) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get("limit"))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badRequest("limit must be an integer")
	}
	return n, nil
}
