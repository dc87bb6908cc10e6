// Package probe checks a running podium server over HTTP. It fetches the
// aggregations concurrently and verifies the properties every response
// must hold: totals add up, tables are ordered and ranked, series are in
// year order and limits are honoured.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
)

// Defaults for Config.
const (
	DefaultBaseURL = "http://localhost:9080"
	DefaultTimeout = 10 * time.Second
	DefaultLimit   = 5
)

// Errors returned by Run.
var (
	ErrUnreachable = errors.New("server unreachable")
	ErrStatus      = errors.New("unexpected status")
	ErrFailed      = errors.New("probe checks failed")
)

// Config holds the probe target.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Limit is the row limit requested from the top athlete routes.
	Limit int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	return c
}

// Check is the outcome of one verified property.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Report lists every check of a run.
type Report struct {
	BaseURL  string        `json:"base_url"`
	Checks   []Check       `json:"checks"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

func (r *Report) add(name string, err error) {
	c := Check{Name: name, Passed: err == nil}
	if err != nil {
		c.Detail = err.Error()
		r.Failed++
	} else {
		r.Passed++
	}
	r.Checks = append(r.Checks, c)
}

// snapshot holds the responses the checks run over.
type snapshot struct {
	selectors  types.Selectors
	tally      []types.TallyRow
	nations    []types.YearCount
	events     []types.YearCount
	athletes   []types.YearCount
	gender     []types.GenderYear
	top        []types.AthleteMedals
	yearTally  []types.YearCount
	regionTop  []types.AthleteMedals
	topRegion  string
	overview   types.Overview
	perSport   []types.SportYearCount
	editionCnt int
}

// Run fetches the aggregations from cfg.BaseURL and verifies them. The
// report is returned even when checks fail; the error is then ErrFailed.
func Run(ctx context.Context, cfg Config) (Report, error) {
	cfg = cfg.withDefaults()
	start := time.Now()
	log := logger.Get().Named("probe")
	log.Info(ctx, "starting probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Duration("timeout", cfg.Timeout),
		logger.Int("limit", cfg.Limit))

	c := newClient(cfg.BaseURL, cfg.Timeout)
	snap, err := fetch(ctx, c, cfg.Limit)
	if err != nil {
		return Report{BaseURL: cfg.BaseURL}, err
	}

	rep := verify(snap, cfg.Limit)
	rep.BaseURL = cfg.BaseURL
	rep.Duration = time.Since(start)

	log.Info(ctx, "probe finished",
		logger.Int("passed", rep.Passed),
		logger.Int("failed", rep.Failed),
		logger.Duration("duration", rep.Duration))
	if rep.Failed > 0 {
		return rep, fmt.Errorf("%w: %d of %d", ErrFailed, rep.Failed, len(rep.Checks))
	}
	return rep, nil
}

func fetch(ctx context.Context, c *client, limit int) (*snapshot, error) {
	s := &snapshot{}
	lim := fmt.Sprintf("limit=%d", limit)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.getJSON(gctx, "/api/selectors", &s.selectors) })
	g.Go(func() error { return c.getJSON(gctx, "/api/medal-tally", &s.tally) })
	g.Go(func() error { return c.getJSON(gctx, "/api/over-time?column=nations", &s.nations) })
	g.Go(func() error { return c.getJSON(gctx, "/api/over-time?column=events", &s.events) })
	g.Go(func() error { return c.getJSON(gctx, "/api/over-time?column=athletes", &s.athletes) })
	g.Go(func() error { return c.getJSON(gctx, "/api/participation/gender", &s.gender) })
	g.Go(func() error { return c.getJSON(gctx, "/api/athletes/top?"+lim, &s.top) })
	g.Go(func() error { return c.getJSON(gctx, "/api/overview", &s.overview) })
	g.Go(func() error { return c.getJSON(gctx, "/api/events-per-sport", &s.perSport) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.editionCnt = len(s.selectors.Years) - 1
	if len(s.tally) == 0 {
		return s, nil
	}
	s.topRegion = s.tally[0].Region
	region := url.PathEscape(s.topRegion)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error { return c.getJSON(gctx, "/api/countries/"+region+"/medals", &s.yearTally) })
	g.Go(func() error { return c.getJSON(gctx, "/api/countries/"+region+"/athletes?"+lim, &s.regionTop) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

func verify(s *snapshot, limit int) Report {
	var rep Report
	rep.add("tally totals", checkTotals(s.tally))
	rep.add("tally order", checkTallyOrder(s.tally))
	rep.add("tally ranks", checkRanks(s.tally))
	rep.add("nations series years", checkYears(years(s.nations)))
	rep.add("events series years", checkYears(years(s.events)))
	rep.add("athletes series years", checkYears(years(s.athletes)))
	rep.add("gender series years", checkYears(genderYears(s.gender)))
	rep.add("series cover every edition", checkEditions(s.editionCnt, len(s.nations), len(s.gender)))
	rep.add("top athletes limit", checkTop(s.top, limit))
	rep.add("country athletes limit", checkTop(s.regionTop, limit))
	rep.add("country medals match tally", checkCountry(s))
	rep.add("overview editions", checkOverview(s))
	rep.add("events per sport match series", checkEventsPerSport(s.perSport, s.events))
	return rep
}
