package analytics

import (
	"sort"
	"strconv"

	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
)

// MedalTally returns the medal table for a year selector and a region
// selector, each either Overall or a concrete value.
//
// Rows are deduplicated per awarded medal (Region, Year, Sport, Event,
// Medal) so a team medal counts once per country. With the region selector
// on Overall there is one row per region; with a concrete region there is
// one row per (region, year). Rows are ordered Gold, Silver, Bronze
// descending, then Region and Year ascending, and ranked from 1. When both
// selectors are concrete the single row carries no rank.
func MedalTally(t *table.Table, year, region string) []types.TallyRow {
	y, allYears, ok := parseYear(year)
	if !ok {
		return []types.TallyRow{}
	}
	allRegions := IsOverall(region)

	rows := t.DropDuplicates(table.ByMedalEntry).Filter(func(e model.Event) bool {
		if e.Region == "" {
			return false
		}
		if !allYears && e.Year != y {
			return false
		}
		return allRegions || e.Region == region
	})

	groups := make(map[string]*types.TallyRow)
	var order []string
	for _, e := range rows.All() {
		row := types.TallyRow{Region: e.Region}
		switch {
		case !allRegions:
			row.Year = e.Year
		case !allYears:
			row.Year = y
		}
		k := dedupe.Key(row.Region, strconv.Itoa(row.Year))
		acc, exists := groups[k]
		if !exists {
			acc = &row
			groups[k] = acc
			order = append(order, k)
		}
		acc.Gold += e.Gold()
		acc.Silver += e.Silver()
		acc.Bronze += e.Bronze()
	}

	out := make([]types.TallyRow, 0, len(order))
	for _, k := range order {
		r := *groups[k]
		r.Total = r.Gold + r.Silver + r.Bronze
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return tallyLess(out[i], out[j]) })

	if allYears || allRegions {
		for i := range out {
			out[i].Rank = i + 1
		}
	}
	return out
}

// tallyLess orders medal rows best first.
func tallyLess(a, b types.TallyRow) bool {
	if a.Gold != b.Gold {
		return a.Gold > b.Gold
	}
	if a.Silver != b.Silver {
		return a.Silver > b.Silver
	}
	if a.Bronze != b.Bronze {
		return a.Bronze > b.Bronze
	}
	if a.Region != b.Region {
		return a.Region < b.Region
	}
	return a.Year < b.Year
}
