package search

import (
	"sort"

	"github.com/poiesic/coursematch/core"
)

// DefaultTopK is the number of results returned by the demo rankings.
const DefaultTopK = 5

// KeywordSearch ranks courses by how many distinct query words appear in their
// code, name, or description. Ties keep corpus order.
// A topK of zero or less returns every course.
func KeywordSearch(query string, courses []core.Course, topK int) core.Ranking {
	words := queryWords(query)

	results := make(core.Ranking, len(courses))
	for i, c := range courses {
		results[i] = core.ScoredCourse{
			Course: c,
			Score:  float64(countMatches(words, searchableText(c))),
		}
	}

	// Sort by score descending
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}

// UniqueWordCount returns the number of distinct whitespace-separated words in the query,
// which bounds every keyword score.
func UniqueWordCount(query string) int {
	return len(queryWords(query))
}
