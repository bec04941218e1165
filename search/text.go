package search

import (
	"strings"

	"github.com/poiesic/coursematch/core"
)

// queryWords lower-cases the query and splits it on whitespace, keeping the
// first occurrence of each word. Punctuation stays attached to its word.
func queryWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(fields))
	words := make([]string, 0, len(fields))

	for _, word := range fields {
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}

	return words
}

// searchableText is the lower-cased text the keyword baseline matches against.
// Category and prerequisites are deliberately excluded.
func searchableText(c core.Course) string {
	return strings.ToLower(c.Code + " " + c.Name + " " + c.Description)
}

// countMatches counts the words that occur anywhere in text, including inside longer words.
func countMatches(words []string, text string) int {
	matches := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			matches++
		}
	}
	return matches
}
