package analytics

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
)

// Physique returns one height/weight point per athlete name, optionally for
// one sport. Names are deduplicated before the sport filter, so an athlete
// appears under the sport of their first row only. Rows missing either
// measure are left out.
func Physique(t *table.Table, sport string) []types.Physique {
	inSport := matchSport(sport)
	rows := t.DropDuplicates(table.ByName).Filter(func(e model.Event) bool {
		return inSport(e) && e.Height.Valid && e.Weight.Valid
	})
	out := make([]types.Physique, 0, rows.Len())
	for _, e := range rows.All() {
		out = append(out, types.Physique{
			Name:   e.Name,
			Sex:    string(e.Sex),
			Height: e.Height.Value,
			Weight: e.Weight.Value,
			Sport:  e.Sport,
			Medal:  e.Medal.Label(),
		})
	}
	return out
}

// GenderParticipation counts distinct male and female athletes per
// edition. Athletes are deduplicated on (Name, Region) first. Years present
// for only one sex carry zero for the other.
func GenderParticipation(t *table.Table) []types.GenderYear {
	athletes := t.DropDuplicates(table.ByAthlete)
	male := distinctNamesByYear(athletes, model.Male)
	female := distinctNamesByYear(athletes, model.Female)

	var years []int
	seen := make(map[int]struct{})
	for _, m := range []map[int]int{male, female} {
		for y := range m {
			if _, ok := seen[y]; !ok {
				seen[y] = struct{}{}
				years = append(years, y)
			}
		}
	}

	out := make([]types.GenderYear, 0, len(years))
	for _, y := range sortedYears(years) {
		out = append(out, types.GenderYear{Year: y, Male: male[y], Female: female[y]})
	}
	return out
}

func distinctNamesByYear(t *table.Table, sex model.Sex) map[int]int {
	rows := t.Filter(func(e model.Event) bool { return e.Sex == sex && e.Name != "" }).
		DropDuplicates(table.ByYearAnd(table.Name))
	counts := make(map[int]int)
	for _, e := range rows.All() {
		counts[e.Year]++
	}
	return counts
}
