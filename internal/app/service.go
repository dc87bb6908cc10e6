// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/okian/podium/internal/adapters/dataset"
	"github.com/okian/podium/internal/domain/analytics"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Sentinel kinds for service errors.
var (
	ErrNotStarted   = errors.New("service not started")
	ErrInvalidLimit = errors.New("invalid limit")
	ErrUnknownKind  = errors.New("unknown suggestion kind")
)

// Suggestion kinds accepted by Suggest.
const (
	KindRegion = "region"
	KindSport  = "sport"
)

const tracerName = "podium/app"

// Service owns the loaded event table and runs aggregations over it. The
// table is read-only once Start returns, so aggregations may run
// concurrently.
type Service struct {
	mu sync.RWMutex

	table    *table.Table
	injected bool
	report   dataset.Report
	loadedAt time.Time

	// Configuration
	eventsPath         string
	regionsPath        string
	season             model.Season
	nocAliases         map[string]string
	topAthletes        int
	topCountryAthletes int
	maxLimit           int
	ageSports          []string

	// State
	started bool

	logger logger.Logger
	tracer trace.Tracer
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTable serves t instead of loading the dataset files.
func WithTable(t *table.Table) Option {
	return func(s *Service) {
		if t != nil {
			s.table = t
			s.injected = true
		}
	}
}

// WithEventsPath sets the athlete events file.
func WithEventsPath(path string) Option {
	return func(s *Service) { s.eventsPath = path }
}

// WithRegionsPath sets the NOC regions file.
func WithRegionsPath(path string) Option {
	return func(s *Service) { s.regionsPath = path }
}

// WithSeason selects the season kept at load.
func WithSeason(season model.Season) Option {
	return func(s *Service) {
		if season != "" {
			s.season = season
		}
	}
}

// WithNOCAliases sets the NOC rewrite table applied before the region join.
func WithNOCAliases(aliases map[string]string) Option {
	return func(s *Service) { s.nocAliases = aliases }
}

// WithTopAthletes sets the default size of the top athletes table.
func WithTopAthletes(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topAthletes = n
		}
	}
}

// WithTopCountryAthletes sets the default size of a country's top athletes table.
func WithTopCountryAthletes(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topCountryAthletes = n
		}
	}
}

// WithAgeSports sets the sports of the gold medalist age chart.
func WithAgeSports(sports []string) Option {
	return func(s *Service) {
		if len(sports) > 0 {
			s.ageSports = sports
		}
	}
}

// WithMaxLimit caps caller supplied limits.
func WithMaxLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		season:             model.Summer,
		topAthletes:        analytics.DefaultTopAthletes,
		topCountryAthletes: analytics.DefaultTopCountryAthletes,
		maxLimit:           100,
		tracer:             otel.Tracer(tracerName),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset once. A failed load is returned and leaves the
// service stopped.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if !s.injected {
		s.logger.Info(ctx, "loading dataset...",
			logger.String("events", s.eventsPath),
			logger.String("regions", s.regionsPath),
			logger.String("season", string(s.season)),
		)
		ctx, span := s.tracer.Start(ctx, "dataset.Load")
		start := time.Now()
		t, rep, err := dataset.Load(ctx, dataset.Options{
			EventsPath:  s.eventsPath,
			RegionsPath: s.regionsPath,
			Season:      s.season,
			NOCAliases:  s.nocAliases,
		})
		took := time.Since(start)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			span.End()
			metrics.RecordLoadError()
			metrics.RecordErrorByComponent("dataset", loadErrorType(err))
			s.logger.Error(ctx, "dataset load failed", logger.Error(err))
			return fmt.Errorf("start: %w", err)
		}
		span.SetAttributes(attribute.Int("dataset.rows", rep.Kept))
		span.End()
		metrics.RecordLoadDuration(took)
		s.table = t
		s.report = rep
		s.logger.Info(ctx, "dataset loaded",
			logger.Int("rows", rep.Kept),
			logger.Int("duplicates", rep.Duplicates),
			logger.Int("otherSeason", rep.OtherSeason),
			logger.Int("unresolved", rep.Unresolved),
			logger.Duration("took", took),
		)
	}

	metrics.UpdateDataset(s.table.Len(), len(analytics.Countries(s.table)), s.report.Duplicates, s.report.Unresolved)
	s.loadedAt = time.Now()
	s.started = true
	s.logger.Info(ctx, "analytics service started", logger.Int("rows", s.table.Len()))
	return nil
}

func loadErrorType(err error) string {
	switch {
	case errors.Is(err, dataset.ErrOpen):
		return "open"
	case errors.Is(err, dataset.ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, dataset.ErrMalformedRow):
		return "malformed_row"
	default:
		return "other"
	}
}

// Stop marks the service stopped. It is safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "analytics service stopped")
}

// MaxLimit is the largest limit accepted by the top athletes calls.
func (s *Service) MaxLimit() int { return s.maxLimit }

// Table returns the loaded table.
func (s *Service) Table() (*table.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.table, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
		"season":  string(s.season),
	}
	if s.started {
		stats["rows"] = s.table.Len()
		stats["regions"] = len(analytics.Countries(s.table))
		stats["sports"] = len(s.table.Distinct(table.Sport))
		stats["years"] = len(s.table.DistinctYears())
		stats["injected"] = s.injected
		stats["load"] = s.report
		stats["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
	}
	return stats
}

// run executes one aggregation inside a span and records its metrics.
func run[T any](ctx context.Context, s *Service, name string, size func(T) int, fn func(*table.Table) T) (T, error) {
	var zero T
	t, err := s.Table()
	if err != nil {
		return zero, err
	}

	ctx, span := s.tracer.Start(ctx, "analytics."+name,
		trace.WithAttributes(attribute.String("aggregation.name", name)))
	defer span.End()

	start := time.Now()
	out := fn(t)
	took := time.Since(start)
	n := size(out)

	span.SetAttributes(attribute.Int("aggregation.rows", n))
	span.SetStatus(codes.Ok, "")
	metrics.RecordAggregation(name, took, n)
	s.logger.Debug(ctx, "aggregation done",
		logger.String("aggregation", name),
		logger.Int("rows", n),
		logger.Duration("took", took),
	)
	return out, nil
}

func count[E any](v []E) int { return len(v) }

func one[T any](T) int { return 1 }

// limit resolves a caller limit: zero picks def, negatives and values above
// the maximum are rejected.
func (s *Service) limit(n, def int) (int, error) {
	switch {
	case n == 0:
		return def, nil
	case n < 0 || n > s.maxLimit:
		return 0, fmt.Errorf("%w: %d (max %d)", ErrInvalidLimit, n, s.maxLimit)
	default:
		return n, nil
	}
}

// Selectors returns the year, region and sport control values.
func (s *Service) Selectors(ctx context.Context) (types.Selectors, error) {
	return run(ctx, s, "selectors", func(v types.Selectors) int { return len(v.Years) + len(v.Regions) },
		analytics.Selectors)
}

// MedalTally returns the medal table for a year and region selector.
func (s *Service) MedalTally(ctx context.Context, year, region string) ([]types.TallyRow, error) {
	return run(ctx, s, "medal_tally", count[types.TallyRow], func(t *table.Table) []types.TallyRow {
		return analytics.MedalTally(t, year, region)
	})
}

// OverTime counts distinct values of col per edition.
func (s *Service) OverTime(ctx context.Context, col analytics.Column) ([]types.YearCount, error) {
	return run(ctx, s, "over_time", count[types.YearCount], func(t *table.Table) []types.YearCount {
		return analytics.OverTime(t, col)
	})
}

// TopAthletes returns the most decorated athletes, optionally in one sport.
func (s *Service) TopAthletes(ctx context.Context, sport string, limit int) ([]types.AthleteMedals, error) {
	n, err := s.limit(limit, s.topAthletes)
	if err != nil {
		return nil, err
	}
	return run(ctx, s, "top_athletes", count[types.AthleteMedals], func(t *table.Table) []types.AthleteMedals {
		return analytics.TopAthletes(t, sport, n)
	})
}

// YearTally returns region's medal count per edition.
func (s *Service) YearTally(ctx context.Context, region string) ([]types.YearCount, error) {
	return run(ctx, s, "year_tally", count[types.YearCount], func(t *table.Table) []types.YearCount {
		return analytics.YearTally(t, region)
	})
}

// CountryHeatmap returns region's Sport x Year medal matrix.
func (s *Service) CountryHeatmap(ctx context.Context, region string) (types.Heatmap, error) {
	return run(ctx, s, "country_heatmap", func(h types.Heatmap) int { return len(h.Sports) },
		func(t *table.Table) types.Heatmap { return analytics.CountryHeatmap(t, region) })
}

// TopCountryAthletes returns region's most decorated athletes.
func (s *Service) TopCountryAthletes(ctx context.Context, region string, limit int) ([]types.AthleteMedals, error) {
	n, err := s.limit(limit, s.topCountryAthletes)
	if err != nil {
		return nil, err
	}
	return run(ctx, s, "top_country_athletes", count[types.AthleteMedals], func(t *table.Table) []types.AthleteMedals {
		return analytics.TopCountryAthletes(t, region, n)
	})
}

// Physique returns height/weight points, optionally for one sport.
func (s *Service) Physique(ctx context.Context, sport string) ([]types.Physique, error) {
	return run(ctx, s, "physique", count[types.Physique], func(t *table.Table) []types.Physique {
		return analytics.Physique(t, sport)
	})
}

// GenderParticipation returns male and female athlete counts per edition.
func (s *Service) GenderParticipation(ctx context.Context) ([]types.GenderYear, error) {
	return run(ctx, s, "gender_participation", count[types.GenderYear], analytics.GenderParticipation)
}

// Overview returns the headline dataset counts.
func (s *Service) Overview(ctx context.Context) (types.Overview, error) {
	return run(ctx, s, "overview", one[types.Overview], analytics.Overview)
}

// EventsPerSport returns the number of events of every sport per edition.
func (s *Service) EventsPerSport(ctx context.Context) ([]types.SportYearCount, error) {
	return run(ctx, s, "events_per_sport", count[types.SportYearCount], analytics.EventsPerSport)
}

// AgeDistributions returns the overall and per medal age distributions.
func (s *Service) AgeDistributions(ctx context.Context) ([]types.Distribution, error) {
	return run(ctx, s, "age_distributions", count[types.Distribution], analytics.AgeDistributions)
}

// GoldMedalistAges returns the gold medalist ages of the configured sports.
func (s *Service) GoldMedalistAges(ctx context.Context) ([]types.Distribution, error) {
	return run(ctx, s, "gold_medalist_ages", count[types.Distribution], func(t *table.Table) []types.Distribution {
		return analytics.GoldMedalistAges(t, s.ageSports)
	})
}

// Suggest returns up to n known regions or sports closest to q.
func (s *Service) Suggest(ctx context.Context, kind, q string, n int) ([]string, error) {
	var candidates func(*table.Table) []string
	switch kind {
	case KindRegion, "":
		candidates = analytics.Countries
	case KindSport:
		candidates = analytics.Sports
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	limit, err := s.limit(n, 5)
	if err != nil {
		return nil, err
	}
	return run(ctx, s, "suggest", count[string], func(t *table.Table) []string {
		return analytics.Suggest(candidates(t), q, limit)
	})
}
