// Package render writes aggregate results as JSON or CSV.
package render

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/okian/podium/internal/domain/types"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ErrUnsupported is returned for values without a tabular form.
var ErrUnsupported = errors.New("unsupported shape")

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat resolves a format name. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the media type of f.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

// Write encodes v in format f.
func Write(w io.Writer, f Format, v any) error {
	if f == FormatCSV {
		return CSV(w, v)
	}
	return JSON(w, v)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// CSV writes v as CSV with a header row. Empty results write the header
// only.
func CSV(w io.Writer, v any) error {
	switch rows := v.(type) {
	case []types.TallyRow:
		return structs(w, rows)
	case []types.YearCount:
		return structs(w, rows)
	case []types.AthleteMedals:
		return structs(w, rows)
	case []types.GenderYear:
		return structs(w, rows)
	case []types.SportYearCount:
		return structs(w, rows)
	case types.Overview:
		return structs(w, []types.Overview{rows})
	case []types.Physique:
		return records(w, physiqueRecords(rows))
	case []types.Distribution:
		return records(w, distributionRecords(rows))
	case types.Heatmap:
		return records(w, heatmapRecords(rows))
	case []string:
		recs := [][]string{{"Value"}}
		for _, s := range rows {
			recs = append(recs, []string{s})
		}
		return records(w, recs)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// structs renders a slice of tagged structs through a dataframe.
func structs[T any](w io.Writer, rows []T) error {
	if len(rows) == 0 {
		return headerOnly(w, header(reflect.TypeFor[T]()))
	}
	df := dataframe.LoadStructs(rows)
	if df.Err != nil {
		return fmt.Errorf("render: %w", df.Err)
	}
	return df.WriteCSV(w)
}

// records renders string records, the first being the header, keeping
// every cell as text.
func records(w io.Writer, recs [][]string) error {
	if len(recs) <= 1 {
		var h []string
		if len(recs) == 1 {
			h = recs[0]
		}
		return headerOnly(w, h)
	}
	df := dataframe.LoadRecords(recs,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return fmt.Errorf("render: %w", df.Err)
	}
	return df.WriteCSV(w)
}

func headerOnly(w io.Writer, h []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(h); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// header lists the dataframe column names of a struct type.
func header(t reflect.Type) []string {
	var out []string
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("dataframe"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out = append(out, name)
	}
	return out
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func physiqueRecords(rows []types.Physique) [][]string {
	recs := [][]string{header(reflect.TypeFor[types.Physique]())}
	for _, p := range rows {
		recs = append(recs, []string{p.Name, p.Sex, num(p.Height), num(p.Weight), p.Sport, p.Medal})
	}
	return recs
}

func distributionRecords(rows []types.Distribution) [][]string {
	recs := [][]string{{"Label", "N", "Min", "Max", "Mean", "Median"}}
	for _, d := range rows {
		recs = append(recs, []string{d.Label, strconv.Itoa(d.N), num(d.Min), num(d.Max), num(d.Mean), num(d.Median)})
	}
	return recs
}

func heatmapRecords(h types.Heatmap) [][]string {
	head := make([]string, 0, len(h.Years)+1)
	head = append(head, "Sport")
	for _, y := range h.Years {
		head = append(head, strconv.Itoa(y))
	}
	recs := [][]string{head}
	for i, s := range h.Sports {
		row := make([]string, 0, len(h.Years)+1)
		row = append(row, s)
		for j := range h.Years {
			row = append(row, strconv.Itoa(h.Counts[i][j]))
		}
		recs = append(recs, row)
	}
	return recs
}
