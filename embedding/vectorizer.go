package embedding

import (
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Vectorizer maps text to TF-IDF weights over a capped vocabulary.
type Vectorizer struct {
	analyzer    *Analyzer
	maxFeatures int
	sublinear   bool

	vocabulary map[string]int
	features   []string
	idf        []float64
}

// NewVectorizer creates an unfitted vectorizer keeping at most maxFeatures terms.
func NewVectorizer(analyzer *Analyzer, maxFeatures int, sublinear bool) *Vectorizer {
	return &Vectorizer{analyzer: analyzer, maxFeatures: maxFeatures, sublinear: sublinear}
}

type termStats struct {
	term  string
	count int
	df    int
}

// Fit learns the vocabulary and inverse document frequencies.
// Terms are ranked by corpus frequency, then document frequency, then
// fewer words, then alphabetically; the top maxFeatures are kept and
// indexed in alphabetical order.
func (v *Vectorizer) Fit(texts []string) error {
	stats := make(map[string]*termStats)
	for _, text := range texts {
		seen := make(map[string]bool)
		for _, term := range v.analyzer.Terms(text) {
			s, ok := stats[term]
			if !ok {
				s = &termStats{term: term}
				stats[term] = s
			}
			s.count++
			if !seen[term] {
				seen[term] = true
				s.df++
			}
		}
	}
	if len(stats) == 0 {
		return ErrEmptyVocabulary
	}

	ranked := make([]*termStats, 0, len(stats))
	for _, s := range stats {
		ranked = append(ranked, s)
	}
	slices.SortFunc(ranked, func(a, b *termStats) int {
		if a.count != b.count {
			return b.count - a.count
		}
		if a.df != b.df {
			return b.df - a.df
		}
		if wa, wb := strings.Count(a.term, " "), strings.Count(b.term, " "); wa != wb {
			return wa - wb
		}
		return strings.Compare(a.term, b.term)
	})
	if v.maxFeatures > 0 && len(ranked) > v.maxFeatures {
		ranked = ranked[:v.maxFeatures]
	}
	slices.SortFunc(ranked, func(a, b *termStats) int {
		return strings.Compare(a.term, b.term)
	})

	n := float64(len(texts))
	v.vocabulary = make(map[string]int, len(ranked))
	v.features = make([]string, len(ranked))
	v.idf = make([]float64, len(ranked))
	for i, s := range ranked {
		v.vocabulary[s.term] = i
		v.features[i] = s.term
		v.idf[i] = math.Log((1+n)/(1+float64(s.df))) + 1
	}
	return nil
}

// Fitted reports whether Fit has succeeded.
func (v *Vectorizer) Fitted() bool {
	return v.vocabulary != nil
}

// Size returns the vocabulary size.
func (v *Vectorizer) Size() int {
	return len(v.features)
}

// Features returns the vocabulary in index order, which is alphabetical.
func (v *Vectorizer) Features() []string {
	return slices.Clone(v.features)
}

// Transform returns the L2-normalised TF-IDF row for text.
// Terms outside the vocabulary are dropped.
func (v *Vectorizer) Transform(text string) []float64 {
	row := make([]float64, len(v.features))
	for _, term := range v.analyzer.Terms(text) {
		if i, ok := v.vocabulary[term]; ok {
			row[i]++
		}
	}
	for i, tf := range row {
		if tf == 0 {
			continue
		}
		if v.sublinear {
			tf = 1 + math.Log(tf)
		}
		row[i] = tf * v.idf[i]
	}
	return NormalizeVector(row)
}

// TransformAll stacks the rows for texts into a matrix.
func (v *Vectorizer) TransformAll(texts []string) *mat.Dense {
	m := mat.NewDense(len(texts), len(v.features), nil)
	for i, text := range texts {
		m.SetRow(i, v.Transform(text))
	}
	return m
}
