package analytics

import (
	"sort"
	"strconv"

	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
)

// Selectors returns the values for the year and country controls. Years are
// descending, regions ascending; both lists start with Overall. Sports are
// ascending with Overall first. Countries is the region list without Overall.
func Selectors(t *table.Table) types.Selectors {
	years := t.DistinctYears()
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	ys := make([]string, 0, len(years)+1)
	ys = append(ys, types.Overall)
	for _, y := range years {
		ys = append(ys, strconv.Itoa(y))
	}

	countries := Countries(t)
	regions := append([]string{types.Overall}, countries...)
	sports := append([]string{types.Overall}, Sports(t)...)

	return types.Selectors{
		Years:     ys,
		Regions:   regions,
		Sports:    sports,
		Countries: countries,
	}
}

// Countries returns the distinct non-empty regions in ascending order.
func Countries(t *table.Table) []string {
	return sortedStrings(t.Distinct(table.Region))
}

// Sports returns the distinct sports in ascending order.
func Sports(t *table.Table) []string {
	return sortedStrings(t.Distinct(table.Sport))
}
