package analytics

import (
	"math"
	"sort"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
)

// Age distribution labels.
const (
	LabelOverallAge = "Overall Age"
	LabelGold       = "Gold Medalist"
	LabelSilver     = "Silver Medalist"
	LabelBronze     = "Bronze Medalist"
)

// DefaultAgeSports is the sport list used by GoldMedalistAges when the
// caller has no list of its own.
var DefaultAgeSports = []string{
	"Basketball", "Judo", "Football", "Tug-Of-War", "Athletics",
	"Swimming", "Badminton", "Sailing", "Gymnastics",
	"Art Competitions", "Handball", "Weightlifting", "Wrestling",
	"Water Polo", "Hockey", "Rowing", "Fencing",
	"Shooting", "Boxing", "Taekwondo", "Cycling", "Diving", "Canoeing",
	"Tennis", "Golf", "Softball", "Archery",
	"Volleyball", "Synchronized Swimming", "Table Tennis", "Baseball",
	"Rhythmic Gymnastics", "Rugby Sevens",
	"Beach Volleyball", "Triathlon", "Rugby", "Polo", "Ice Hockey",
}

// AgeDistributions returns the ages of all athletes and of gold, silver and
// bronze medalists, one athlete per (Name, Region).
func AgeDistributions(t *table.Table) []types.Distribution {
	athletes := t.DropDuplicates(table.ByAthlete)
	return []types.Distribution{
		Summarize(LabelOverallAge, ages(athletes, func(model.Event) bool { return true })),
		Summarize(LabelGold, ages(athletes, func(e model.Event) bool { return e.Medal == model.Gold })),
		Summarize(LabelSilver, ages(athletes, func(e model.Event) bool { return e.Medal == model.Silver })),
		Summarize(LabelBronze, ages(athletes, func(e model.Event) bool { return e.Medal == model.Bronze })),
	}
}

// GoldMedalistAges returns the gold medalist age distribution of every sport
// in sports, in the given order. Sports without a single aged gold medalist
// are omitted. A nil list uses DefaultAgeSports.
func GoldMedalistAges(t *table.Table, sports []string) []types.Distribution {
	if sports == nil {
		sports = DefaultAgeSports
	}
	athletes := t.DropDuplicates(table.ByAthlete).Filter(func(e model.Event) bool {
		return e.Medal == model.Gold
	})
	out := make([]types.Distribution, 0, len(sports))
	for _, s := range sports {
		vals := ages(athletes, func(e model.Event) bool { return e.Sport == s })
		if len(vals) == 0 {
			continue
		}
		out = append(out, Summarize(s, vals))
	}
	return out
}

func ages(t *table.Table, pred table.Predicate) []float64 {
	var out []float64
	for _, e := range t.All() {
		if e.Age.Valid && pred(e) {
			out = append(out, e.Age.Value)
		}
	}
	return out
}

// Summarize computes the summary statistics of vals. The returned values
// are sorted ascending.
func Summarize(label string, vals []float64) types.Distribution {
	d := types.Distribution{Label: label, Values: []float64{}}
	if len(vals) == 0 {
		return d
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)

	var sum float64
	for _, v := range cp {
		sum += v
	}
	d.N = len(cp)
	d.Min = cp[0]
	d.Max = cp[len(cp)-1]
	d.Mean = sum / float64(len(cp))
	d.Median = quantile(cp, 0.5)
	d.Values = cp
	return d
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
