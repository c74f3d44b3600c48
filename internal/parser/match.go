package parser

import (
	"strings"

	"github.com/akshatchaturvedi28/athletepro/internal/models"
)

const (
	nameMatchThreshold = 0.8
	descMatchThreshold = 0.7
	containmentScore   = 0.9
)

// MatchBenchmark compares entity text against the benchmark catalogues in
// fixed priority order (girl, then hero, then notable) and returns the first
// entry over the threshold, or nil when the entity is a custom workout.
// First-match-wins is deliberate: girl-WOD disambiguation takes precedence
// over a potentially stronger match later in the scan.
func MatchBenchmark(entityText string, ref *ReferenceData) *models.BenchmarkMatch {
	catalogues := []struct {
		name    string
		entries []models.BenchmarkEntry
	}{
		{models.CatalogueGirl, ref.GirlBenchmarks},
		{models.CatalogueHero, ref.HeroBenchmarks},
		{models.CatalogueNotable, ref.NotableBenchmarks},
	}

	for _, c := range catalogues {
		for _, entry := range c.entries {
			if nameSimilarity(entityText, entry.Name) > nameMatchThreshold ||
				descriptionSimilarity(entityText, entry.Description) > descMatchThreshold {
				id := entry.ID
				match := &models.BenchmarkMatch{
					SourceCatalogue: c.name,
					DatabaseID:      &id,
					Category:        c.name,
				}
				if ref.LiftsForBenchmark != nil {
					match.Lifts = ref.LiftsForBenchmark(entry.ID, c.name)
				}
				return match
			}
		}
	}
	return nil
}

// nameSimilarity scores the input against a candidate name. Containment in
// either direction scores a flat 0.9. Otherwise the score is the normalized
// edit-distance fraction: a distance, where smaller means closer, yet it is
// compared against the same threshold direction as the containment score.
// That asymmetry matches the long-standing matcher behavior and changing it
// would change which workouts auto-match.
func nameSimilarity(input, candidate string) float64 {
	a := strings.ToLower(strings.TrimSpace(input))
	b := strings.ToLower(strings.TrimSpace(candidate))
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return containmentScore
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return float64(levenshtein(a, b)) / float64(maxLen)
}

// descriptionSimilarity is the fraction of the input's words (length > 2)
// that partially match any word of the candidate description, over the
// larger of the two word counts.
func descriptionSimilarity(input, candidate string) float64 {
	var inWords []string
	for _, w := range strings.Fields(strings.ToLower(input)) {
		if len(w) > 2 {
			inWords = append(inWords, w)
		}
	}
	candWords := strings.Fields(strings.ToLower(candidate))
	if len(inWords) == 0 || len(candWords) == 0 {
		return 0
	}

	matched := 0
	for _, w := range inWords {
		for _, cw := range candWords {
			if strings.Contains(w, cw) || strings.Contains(cw, w) {
				matched++
				break
			}
		}
	}

	denom := len(inWords)
	if len(candWords) > denom {
		denom = len(candWords)
	}
	return float64(matched) / float64(denom)
}

// levenshtein is the classic iterative edit distance: insertion, deletion,
// and substitution each cost 1, no transpositions.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	rows := len(rb) + 1
	cols := len(ra) + 1
	dist := make([][]int, rows)
	for i := range dist {
		dist[i] = make([]int, cols)
		dist[i][0] = i
	}
	for j := 0; j < cols; j++ {
		dist[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if rb[i-1] == ra[j-1] {
				cost = 0
			}
			del := dist[i-1][j] + 1
			ins := dist[i][j-1] + 1
			sub := dist[i-1][j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			dist[i][j] = m
		}
	}
	return dist[rows-1][cols-1]
}
