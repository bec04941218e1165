package embedding

import (
	"strings"
	"unicode"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// Analyzer turns raw text into the terms counted by a Vectorizer.
type Analyzer struct {
	stopWords map[string]struct{}
	stem      bool
	minN      int
	maxN      int
}

// NewAnalyzer builds an analyzer producing n-grams in [minN, maxN].
// A nil stop list disables stop-word removal.
func NewAnalyzer(stopWords []string, stem bool, minN, maxN int) *Analyzer {
	sw := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		sw[strings.ToLower(w)] = struct{}{}
	}
	return &Analyzer{stopWords: sw, stem: stem, minN: minN, maxN: maxN}
}

// Tokens returns the lower-cased words of text, minus stop words, stemmed
// when stemming is on. Words are runs of at least two letters, digits or
// underscores.
func (a *Analyzer) Tokens(text string) []string {
	var tokens []string
	for _, word := range splitWords(strings.ToLower(text)) {
		if a.isStopWord(word) {
			continue
		}
		if a.stem && !hasDigit(word) {
			word = porterstemmer.StemString(word)
			// "systems" stems to a stop word
			if a.isStopWord(word) {
				continue
			}
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Terms returns every n-gram of the filtered tokens, shortest n first.
// Grams of more than one token are joined with a single space.
func (a *Analyzer) Terms(text string) []string {
	tokens := a.Tokens(text)
	var terms []string
	for n := a.minN; n <= a.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func (a *Analyzer) isStopWord(word string) bool {
	_, ok := a.stopWords[word]
	return ok
}

func splitWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
	words := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			words = append(words, f)
		}
	}
	return words
}

func hasDigit(word string) bool {
	return strings.IndexFunc(word, unicode.IsDigit) >= 0
}
