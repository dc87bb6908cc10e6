// Package dataset reads the athlete events file and the NOC region file
// into an immutable event table.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
)

// DefaultNOCAliases maps event NOC codes to the code used by the region
// file. Singapore competes as SGP in the events file but is listed as SIN.
var DefaultNOCAliases = map[string]string{"SGP": "SIN"}

// Options selects the input files and how rows are normalized.
type Options struct {
	EventsPath  string
	RegionsPath string
	// Season keeps only rows of this season. Empty means Summer.
	Season model.Season
	// NOCAliases rewrites event NOC codes before the region join. Nil uses
	// DefaultNOCAliases; an empty map disables aliasing.
	NOCAliases map[string]string
}

// Report summarizes a load.
type Report struct {
	EventRows   int `json:"event_rows"`
	RegionRows  int `json:"region_rows"`
	Kept        int `json:"kept"`
	Duplicates  int `json:"duplicates"`
	OtherSeason int `json:"other_season"`
	Unresolved  int `json:"unresolved"`
}

var eventColumns = []string{
	"name", "sex", "age", "height", "weight", "team", "noc",
	"games", "year", "season", "city", "sport", "event", "medal",
}

var regionColumns = []string{"noc", "region"}

// ctxCheckEvery is how many rows are parsed between cancellation checks.
const ctxCheckEvery = 4096

// Load reads both files concurrently, joins regions on NOC, keeps the
// configured season and drops exact duplicate rows, keeping the first.
func Load(ctx context.Context, opts Options) (*table.Table, Report, error) {
	season := opts.Season
	if season == "" {
		season = model.Summer
	}
	aliases := opts.NOCAliases
	if aliases == nil {
		aliases = DefaultNOCAliases
	}

	var (
		events  []model.Event
		regions map[string]string
		rep     Report
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = readEvents(gctx, opts.EventsPath)
		return err
	})
	g.Go(func() error {
		var err error
		regions, rep.RegionRows, err = readRegions(gctx, opts.RegionsPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, Report{}, err
	}

	rep.EventRows = len(events)
	kept := events[:0]
	for _, e := range events {
		if !strings.EqualFold(string(e.Season), string(season)) {
			rep.OtherSeason++
			continue
		}
		if to, ok := aliases[e.NOC]; ok {
			e.NOC = to
		}
		e.Region = regions[e.NOC]
		kept = append(kept, e)
	}

	t := table.New(kept).DropDuplicates(table.ByRow)
	rep.Kept = t.Len()
	rep.Duplicates = len(kept) - t.Len()
	for _, e := range t.All() {
		if e.Region == "" {
			rep.Unresolved++
		}
	}
	return t, rep, nil
}

// header maps lower-cased column names to their index.
type header map[string]int

func readHeader(r *csv.Reader, path string, required []string) (header, error) {
	rec, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: empty file", ErrMissingColumn, path)
		}
		return nil, fmt.Errorf("%w: %s: header: %w", ErrMalformedRow, path, err)
	}
	h := make(header, len(rec))
	for i, name := range rec {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range required {
		if _, ok := h[col]; !ok {
			return nil, fmt.Errorf("%w: %s: %q", ErrMissingColumn, path, col)
		}
	}
	return h, nil
}

func (h header) get(rec []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return clean(rec[i])
}

func openCSV(path string) (*os.File, *csv.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrOpen, path, err)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return f, r, nil
}

func readEvents(ctx context.Context, path string) ([]model.Event, error) {
	f, r, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h, err := readHeader(r, path, eventColumns)
	if err != nil {
		return nil, err
	}

	var out []model.Event
	for line := 2; ; line++ {
		if line%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %w", ErrMalformedRow, path, line, err)
		}
		e, err := parseEvent(h, rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %w", ErrMalformedRow, path, line, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func parseEvent(h header, rec []string) (model.Event, error) {
	year, err := strconv.Atoi(h.get(rec, "year"))
	if err != nil {
		return model.Event{}, fmt.Errorf("year: %w", err)
	}
	return model.Event{
		Name:   value(h.get(rec, "name")),
		Sex:    model.Sex(value(h.get(rec, "sex"))),
		Age:    measure(h.get(rec, "age")),
		Height: measure(h.get(rec, "height")),
		Weight: measure(h.get(rec, "weight")),
		Team:   value(h.get(rec, "team")),
		NOC:    value(h.get(rec, "noc")),
		Games:  value(h.get(rec, "games")),
		Year:   year,
		Season: model.Season(value(h.get(rec, "season"))),
		City:   value(h.get(rec, "city")),
		Sport:  value(h.get(rec, "sport")),
		Event:  value(h.get(rec, "event")),
		Medal:  model.ParseMedal(h.get(rec, "medal")),
	}, nil
}

func readRegions(ctx context.Context, path string) (map[string]string, int, error) {
	f, r, err := openCSV(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	h, err := readHeader(r, path, regionColumns)
	if err != nil {
		return nil, 0, err
	}

	out := make(map[string]string)
	rows := 0
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s: line %d: %w", ErrMalformedRow, path, line, err)
		}
		rows++
		noc := value(h.get(rec, "noc"))
		if noc == "" {
			continue
		}
		// First mapping wins, as with a left join on the first match.
		if _, dup := out[noc]; !dup {
			out[noc] = value(h.get(rec, "region"))
		}
	}
	return out, rows, nil
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// value maps the missing marker to the empty string.
func value(s string) string {
	if strings.EqualFold(s, "NA") {
		return ""
	}
	return s
}

// measure parses a numeric cell. Missing or unparsable cells are absent.
func measure(s string) model.Measure {
	s = value(s)
	if s == "" {
		return model.Measure{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Measure{}
	}
	return model.Some(v)
}
