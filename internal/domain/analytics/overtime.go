package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
)

// Column names a string column that OverTime can count.
type Column string

const (
	ColumnRegion Column = "region"
	ColumnEvent  Column = "event"
	ColumnName   Column = "name"
	ColumnSport  Column = "sport"
	ColumnCity   Column = "city"
	ColumnTeam   Column = "team"
	ColumnNOC    Column = "noc"
)

// ErrUnknownColumn is returned by ParseColumn.
var ErrUnknownColumn = errors.New("unknown column")

var columnAliases = map[string]Column{
	"region":   ColumnRegion,
	"nations":  ColumnRegion,
	"event":    ColumnEvent,
	"events":   ColumnEvent,
	"name":     ColumnName,
	"athletes": ColumnName,
	"sport":    ColumnSport,
	"sports":   ColumnSport,
	"city":     ColumnCity,
	"cities":   ColumnCity,
	"team":     ColumnTeam,
	"teams":    ColumnTeam,
	"noc":      ColumnNOC,
}

// ParseColumn resolves a column name or one of its plural aliases,
// ignoring case.
func ParseColumn(s string) (Column, error) {
	c, ok := columnAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
	}
	return c, nil
}

func (c Column) field() table.FieldFunc {
	switch c {
	case ColumnRegion:
		return table.Region
	case ColumnEvent:
		return table.Event
	case ColumnName:
		return table.Name
	case ColumnSport:
		return table.Sport
	case ColumnCity:
		return table.City
	case ColumnTeam:
		return table.Team
	case ColumnNOC:
		return table.NOC
	default:
		return nil
	}
}

// OverTime counts the distinct values of col per edition. Empty values are
// not counted, but every year of the table appears in the series.
func OverTime(t *table.Table, col Column) []types.YearCount {
	field := col.field()
	if field == nil {
		return []types.YearCount{}
	}
	counts := make(map[int]int)
	for _, e := range t.DropDuplicates(table.ByYearAnd(field)).All() {
		if field(e) != "" {
			counts[e.Year]++
		}
	}
	return countByYear(counts, t.DistinctYears())
}

// EventsPerSport counts the distinct events of every sport in every
// edition, ordered by year then sport.
func EventsPerSport(t *table.Table) []types.SportYearCount {
	type key struct {
		year  int
		sport string
	}
	counts := make(map[key]int)
	rows := t.DropDuplicates(table.ByYearSportEvent).Filter(func(e model.Event) bool {
		return e.Sport != "" && e.Event != ""
	})
	for _, e := range rows.All() {
		counts[key{e.Year, e.Sport}]++
	}

	out := make([]types.SportYearCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, types.SportYearCount{Year: k.year, Sport: k.sport, Events: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Sport < out[j].Sport
	})
	return out
}
