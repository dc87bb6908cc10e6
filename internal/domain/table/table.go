// Package table provides the immutable event table handle threaded into
// every aggregation call.
package table

import (
	"iter"
	"strconv"

	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/model"
)

// KeyFunc derives a deduplication key from a row.
type KeyFunc func(e model.Event) string

// FieldFunc reads one string column from a row.
type FieldFunc func(e model.Event) string

// Predicate selects rows.
type Predicate func(e model.Event) bool

// Table is an ordered, read-only set of event rows. The zero value and a
// nil *Table both behave as an empty table.
type Table struct {
	rows []model.Event
}

// New builds a table from rows. The slice is copied so later changes by the
// caller are not visible through the table.
func New(rows []model.Event) *Table {
	cp := make([]model.Event, len(rows))
	copy(cp, rows)
	return &Table{rows: cp}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns a copy of row i.
func (t *Table) Row(i int) model.Event {
	return t.rows[i]
}

// All yields rows in order.
func (t *Table) All() iter.Seq2[int, model.Event] {
	return func(yield func(int, model.Event) bool) {
		if t == nil {
			return
		}
		for i, e := range t.rows {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Filter returns a new table with the rows matching pred.
func (t *Table) Filter(pred Predicate) *Table {
	out := &Table{}
	for _, e := range t.All() {
		if pred(e) {
			out.rows = append(out.rows, e)
		}
	}
	return out
}

// DropDuplicates returns a new table keeping the first row for every key.
func (t *Table) DropDuplicates(key KeyFunc) *Table {
	d := dedupe.NewInMemoryDeduper(dedupe.WithCapacity(t.Len()))
	out := &Table{}
	for _, e := range t.All() {
		if d.SeenAndRecord(key(e)) {
			continue
		}
		out.rows = append(out.rows, e)
	}
	return out
}

// Distinct returns the distinct non-empty values of field in first
// appearance order.
func (t *Table) Distinct(field FieldFunc) []string {
	d := dedupe.NewInMemoryDeduper()
	var out []string
	for _, e := range t.All() {
		v := field(e)
		if v == "" || d.SeenAndRecord(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// DistinctYears returns the distinct years in first appearance order.
func (t *Table) DistinctYears() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, e := range t.All() {
		if _, ok := seen[e.Year]; ok {
			continue
		}
		seen[e.Year] = struct{}{}
		out = append(out, e.Year)
	}
	return out
}

// Column readers.
func Name(e model.Event) string   { return e.Name }
func Region(e model.Event) string { return e.Region }
func Sport(e model.Event) string  { return e.Sport }
func Event(e model.Event) string  { return e.Event }
func City(e model.Event) string   { return e.City }
func Team(e model.Event) string   { return e.Team }
func NOC(e model.Event) string    { return e.NOC }
func Year(e model.Event) string   { return strconv.Itoa(e.Year) }

// ByMedalEntry identifies one awarded medal within a region: team events
// award one medal shared by many athlete rows.
func ByMedalEntry(e model.Event) string {
	return dedupe.Key(e.Region, strconv.Itoa(e.Year), e.Sport, e.Event, e.Medal.String())
}

// ByYearSportEventMedal is ByMedalEntry without the region, for use after a
// region filter.
func ByYearSportEventMedal(e model.Event) string {
	return dedupe.Key(strconv.Itoa(e.Year), e.Sport, e.Event, e.Medal.String())
}

// ByYearAnd keys rows on (Year, field).
func ByYearAnd(field FieldFunc) KeyFunc {
	return func(e model.Event) string {
		return dedupe.Key(strconv.Itoa(e.Year), field(e))
	}
}

// ByAthlete keys rows on (Name, Region).
func ByAthlete(e model.Event) string {
	return dedupe.Key(e.Name, e.Region)
}

// ByName keys rows on Name alone.
func ByName(e model.Event) string { return e.Name }

// ByYearSportEvent keys rows on (Year, Sport, Event).
func ByYearSportEvent(e model.Event) string {
	return dedupe.Key(strconv.Itoa(e.Year), e.Sport, e.Event)
}

// ByRow keys rows on every column, for exact duplicate removal.
func ByRow(e model.Event) string {
	return dedupe.Key(
		e.Name, string(e.Sex), measure(e.Age), measure(e.Height), measure(e.Weight),
		e.Team, e.NOC, e.Region, e.Games, strconv.Itoa(e.Year), string(e.Season),
		e.City, e.Sport, e.Event, e.Medal.String(),
	)
}

func measure(m model.Measure) string {
	if !m.Valid {
		return ""
	}
	return strconv.FormatFloat(m.Value, 'g', -1, 64)
}
