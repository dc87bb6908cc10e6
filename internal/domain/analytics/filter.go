// Package analytics implements the medal, participation and athlete
// aggregations over an event table. Every function is pure: it reads the
// table, never mutates it, and returns a freshly allocated result. Filters
// naming values absent from the data produce empty or zero-filled results.
package analytics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// Default result sizes for the most-successful-athletes tables.
const (
	DefaultTopAthletes        = 15
	DefaultTopCountryAthletes = 10
)

// IsOverall reports whether a selector value means "no filter". An empty
// value is treated as Overall.
func IsOverall(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, types.Overall)
}

// parseYear resolves a year selector. ok is false when the value is neither
// Overall nor an integer.
func parseYear(v string) (year int, all bool, ok bool) {
	if IsOverall(v) {
		return 0, true, true
	}
	y, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false, false
	}
	return y, false, true
}

func matchSport(sport string) func(e model.Event) bool {
	if IsOverall(sport) {
		return func(model.Event) bool { return true }
	}
	return func(e model.Event) bool { return e.Sport == sport }
}

// countByYear counts rows per year and returns the series in ascending year
// order. Every year in years appears, with zero when nothing was counted.
func countByYear(counts map[int]int, years []int) []types.YearCount {
	out := make([]types.YearCount, 0, len(years))
	for _, y := range sortedYears(years) {
		out = append(out, types.YearCount{Year: y, Count: counts[y]})
	}
	return out
}

func sortedYears(years []int) []int {
	cp := make([]int, len(years))
	copy(cp, years)
	sort.Ints(cp)
	return cp
}

func sortedStrings(values []string) []string {
	cp := make([]string, len(values))
	copy(cp, values)
	sort.Strings(cp)
	return cp
}
