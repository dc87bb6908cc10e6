package probe

import (
	"fmt"

	"github.com/okian/podium/internal/domain/types"
)

func checkTotals(rows []types.TallyRow) error {
	for i, r := range rows {
		if r.Total != r.Gold+r.Silver+r.Bronze {
			return fmt.Errorf("row %d (%s): total %d != %d+%d+%d", i, r.Region, r.Total, r.Gold, r.Silver, r.Bronze)
		}
	}
	return nil
}

// checkTallyOrder requires (Gold, Silver, Bronze) non-increasing with ties
// broken by Region ascending.
func checkTallyOrder(rows []types.TallyRow) error {
	for i := 1; i < len(rows); i++ {
		a, b := rows[i-1], rows[i]
		if cmp := compareMedals(a, b); cmp < 0 || (cmp == 0 && a.Region > b.Region) {
			return fmt.Errorf("row %d (%s) sorts before row %d (%s)", i, b.Region, i-1, a.Region)
		}
	}
	return nil
}

func compareMedals(a, b types.TallyRow) int {
	for _, d := range [...]int{a.Gold - b.Gold, a.Silver - b.Silver, a.Bronze - b.Bronze} {
		if d != 0 {
			return d
		}
	}
	return 0
}

func checkRanks(rows []types.TallyRow) error {
	for i, r := range rows {
		if r.Rank != i+1 {
			return fmt.Errorf("row %d (%s): rank %d, want %d", i, r.Region, r.Rank, i+1)
		}
	}
	return nil
}

func checkYears(ys []int) error {
	for i := 1; i < len(ys); i++ {
		if ys[i] <= ys[i-1] {
			return fmt.Errorf("year %d follows %d", ys[i], ys[i-1])
		}
	}
	return nil
}

func years(rows []types.YearCount) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Year
	}
	return out
}

func genderYears(rows []types.GenderYear) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Year
	}
	return out
}

func checkEditions(want int, got ...int) error {
	for _, n := range got {
		if n != want {
			return fmt.Errorf("series has %d points, %d editions", n, want)
		}
	}
	return nil
}

func checkTop(rows []types.AthleteMedals, limit int) error {
	if len(rows) > limit {
		return fmt.Errorf("%d rows for limit %d", len(rows), limit)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Medals > rows[i-1].Medals {
			return fmt.Errorf("%s (%d) ranked below %s (%d)", rows[i].Name, rows[i].Medals, rows[i-1].Name, rows[i-1].Medals)
		}
	}
	return nil
}

// checkCountry requires the per edition medals of the leading region to
// add up to its overall tally total.
func checkCountry(s *snapshot) error {
	if len(s.tally) == 0 {
		return nil
	}
	sum := 0
	for _, y := range s.yearTally {
		sum += y.Count
	}
	if want := s.tally[0].Total; sum != want {
		return fmt.Errorf("%s: per edition medals sum to %d, tally total is %d", s.topRegion, sum, want)
	}
	return nil
}

func checkOverview(s *snapshot) error {
	if s.overview.Editions != s.editionCnt {
		return fmt.Errorf("overview reports %d editions, selectors list %d", s.overview.Editions, s.editionCnt)
	}
	return nil
}

// checkEventsPerSport requires the per sport event counts of every edition
// to add up to the events series.
func checkEventsPerSport(perSport []types.SportYearCount, events []types.YearCount) error {
	sums := make(map[int]int)
	for _, r := range perSport {
		sums[r.Year] += r.Events
	}
	for _, e := range events {
		if sums[e.Year] != e.Count {
			return fmt.Errorf("%d: sports list %d events, series has %d", e.Year, sums[e.Year], e.Count)
		}
	}
	return nil
}
