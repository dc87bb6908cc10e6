package analytics

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/okian/podium/internal/domain/types"
)

// minSimilarity is the lowest normalised edit similarity a candidate needs
// to be suggested when it does not contain the query.
const minSimilarity = 0.6

// Suggest ranks candidates by closeness to query and returns at most n of
// them, best first. Matching is case-insensitive. Candidates containing the
// query rank above pure edit-distance matches. Overall is never suggested.
func Suggest(candidates []string, query string, n int) []string {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" || n <= 0 {
		return []string{}
	}

	type scored struct {
		value string
		score float64
	}
	var hits []scored
	for _, c := range candidates {
		if c == "" || c == types.Overall {
			continue
		}
		fc := fold.String(c)
		var score float64
		switch {
		case fc == q:
			score = 3
		case strings.HasPrefix(fc, q):
			score = 2
		case strings.Contains(fc, q):
			score = 1
		default:
			score = similarity(fc, q)
			if score < minSimilarity {
				continue
			}
		}
		hits = append(hits, scored{value: c, score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].value < hits[j].value
	})
	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.value
	}
	return out
}

// similarity is 1 minus the edit distance over the longer rune length.
func similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := max(la, lb)
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
