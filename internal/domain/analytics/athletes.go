package analytics

import (
	"sort"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
)

// TopAthletes returns the athletes with the most medal rows, optionally
// restricted to one sport. A limit of zero or less uses DefaultTopAthletes.
// Every athlete row counts, so a relay gold counts once per member. Ties keep
// the order in which athletes first medalled. Sport and Region come from the
// athlete's first row in the full table.
func TopAthletes(t *table.Table, sport string, limit int) []types.AthleteMedals {
	if limit <= 0 {
		limit = DefaultTopAthletes
	}
	inSport := matchSport(sport)
	medals := t.Filter(func(e model.Event) bool { return e.HasMedal() && inSport(e) })
	return rankAthletes(t, medals, limit, true)
}

// TopCountryAthletes returns the athletes of region with the most medal
// rows. A limit of zero or less uses DefaultTopCountryAthletes.
func TopCountryAthletes(t *table.Table, region string, limit int) []types.AthleteMedals {
	if limit <= 0 {
		limit = DefaultTopCountryAthletes
	}
	medals := t.Filter(func(e model.Event) bool { return e.HasMedal() && e.Region == region })
	return rankAthletes(t, medals, limit, false)
}

func rankAthletes(full, medals *table.Table, limit int, withRegion bool) []types.AthleteMedals {
	counts := make(map[string]int)
	var names []string
	for _, e := range medals.All() {
		if e.Name == "" {
			continue
		}
		if _, ok := counts[e.Name]; !ok {
			names = append(names, e.Name)
		}
		counts[e.Name]++
	}
	sort.SliceStable(names, func(i, j int) bool { return counts[names[i]] > counts[names[j]] })
	if len(names) > limit {
		names = names[:limit]
	}

	first := firstRows(full, names)
	out := make([]types.AthleteMedals, 0, len(names))
	for _, n := range names {
		row := types.AthleteMedals{Name: n, Medals: counts[n], Sport: first[n].Sport}
		if withRegion {
			row.Region = first[n].Region
		}
		out = append(out, row)
	}
	return out
}

// firstRows maps every name to its first row in t.
func firstRows(t *table.Table, names []string) map[string]model.Event {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	out := make(map[string]model.Event, len(names))
	for _, e := range t.All() {
		if len(out) == len(want) {
			break
		}
		if _, ok := want[e.Name]; !ok {
			continue
		}
		if _, done := out[e.Name]; !done {
			out[e.Name] = e
		}
	}
	return out
}
