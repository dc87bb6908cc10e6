package analytics

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
)

// regionMedals returns the medal rows of region with one row per awarded
// medal.
func regionMedals(t *table.Table, region string) *table.Table {
	return t.Filter(func(e model.Event) bool {
		return e.HasMedal() && e.Region != "" && e.Region == region
	}).DropDuplicates(table.ByYearSportEventMedal)
}

// YearTally returns the number of medals region won in each edition it
// medalled in, in ascending year order.
func YearTally(t *table.Table, region string) []types.YearCount {
	rows := regionMedals(t, region)
	counts := make(map[int]int)
	for _, e := range rows.All() {
		counts[e.Year]++
	}
	return countByYear(counts, rows.DistinctYears())
}

// CountryHeatmap returns region's medal counts as a Sport x Year matrix.
// Sports and years are ascending and only those with at least one medal
// appear. Missing cells are zero.
func CountryHeatmap(t *table.Table, region string) types.Heatmap {
	rows := regionMedals(t, region)
	sports := sortedStrings(rows.Distinct(table.Sport))
	years := sortedYears(rows.DistinctYears())

	si := make(map[string]int, len(sports))
	for i, s := range sports {
		si[s] = i
	}
	yi := make(map[int]int, len(years))
	for j, y := range years {
		yi[y] = j
	}

	counts := make([][]int, len(sports))
	for i := range counts {
		counts[i] = make([]int, len(years))
	}
	for _, e := range rows.All() {
		i, ok := si[e.Sport]
		if !ok {
			continue
		}
		counts[i][yi[e.Year]]++
	}
	return types.Heatmap{Region: region, Sports: sports, Years: years, Counts: counts}
}
